package handler

import (
	"net/http"
	"time"

	"gestor/config"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	service string
	now     func() time.Time
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{service: cfg.Env.ServiceName, now: time.Now}
}

// HealthResponse is the probe body. It is not wrapped in the envelope.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	TS      string `json:"ts"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		OK:      true,
		Service: h.service,
		TS:      h.now().UTC().Format(time.RFC3339),
	})
}
