package handler

import (
	"net/http"
	"strings"

	"gestor/internal/delivery/api/cookie"
	"gestor/internal/delivery/api/response"
	deliverycontext "gestor/internal/delivery/context"
	"gestor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PatternHandlerParams holds dependencies for PatternHandler, injected by Fx.
type PatternHandlerParams struct {
	fx.In

	PatternUC usecase.PatternUsecase
	Cookies   *cookie.Policy
}

// PatternHandler serves the unlock pattern routes.
type PatternHandler struct {
	patternUC usecase.PatternUsecase
	cookies   *cookie.Policy
}

func NewPatternHandler(params PatternHandlerParams) *PatternHandler {
	return &PatternHandler{
		patternUC: params.PatternUC,
		cookies:   params.Cookies,
	}
}

// SetPatternRequest represents the request body for storing a pattern.
type SetPatternRequest struct {
	Pattern string `json:"pattern" validate:"required,min=3"`
}

// PatternLoginRequest accepts the identifier under identifier or email.
type PatternLoginRequest struct {
	Identifier string `json:"identifier" validate:"required_without=Email"`
	Email      string `json:"email"`
	Pattern    string `json:"pattern" validate:"required,min=3"`
	Recordarme bool   `json:"recordarme"`
}

// SetPattern handles POST /auth/pattern. Requires AuthMiddleware.
func (h *PatternHandler) SetPattern(c echo.Context) error {
	var req SetPatternRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.patternUC.SetPattern(c.Request().Context(), deliverycontext.GetAccessToken(c), req.Pattern); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Login handles POST /auth/pattern/login.
func (h *PatternHandler) Login(c echo.Context) error {
	var req PatternLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Email)
	}

	out, err := h.patternUC.PatternLogin(c.Request().Context(), usecase.PatternLoginInput{
		Identifier: identifier,
		Pattern:    req.Pattern,
		RememberMe: req.Recordarme,
		ClientIP:   c.RealIP(),
	})
	if err != nil {
		return err
	}

	h.cookies.Apply(c, out.Session.RefreshToken, out.RememberMe)

	return response.Success(c, http.StatusOK, response.LoginOK, newSessionPayload(out))
}
