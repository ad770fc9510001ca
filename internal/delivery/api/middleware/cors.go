package middleware

import (
	"net/http"
	"slices"

	"gestor/config"
	deliverycontext "gestor/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CORS allows exactly the configured origins. Unknown origins receive no
// Access-Control-Allow-Origin header.
func CORS(cfg *config.Config) echo.MiddlewareFunc {
	allowed := slices.Clone(cfg.CORS.AllowedOrigins)

	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return slices.Contains(allowed, origin), nil
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAuthorization,
			deliverycontext.HeaderXRequestID,
		},
		ExposeHeaders:    []string{deliverycontext.HeaderXRequestID},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           600,
	})
}
