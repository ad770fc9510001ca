package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"gestor/internal/delivery/api/cookie"
	"gestor/internal/delivery/api/middleware"
	"gestor/internal/delivery/api/response"
	deliverycontext "gestor/internal/delivery/context"
	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/errors"
	"gestor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC      usecase.SessionUsecase
	RegistrationUC usecase.RegistrationUsecase
	PasswordUC     usecase.PasswordUsecase
	Cookies        *cookie.Policy
	Logger         *slog.Logger
}

// AuthHandler serves the password login, session and account recovery routes.
type AuthHandler struct {
	sessionUC      usecase.SessionUsecase
	registrationUC usecase.RegistrationUsecase
	passwordUC     usecase.PasswordUsecase
	cookies        *cookie.Policy
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC:      params.SessionUC,
		registrationUC: params.RegistrationUC,
		passwordUC:     params.PasswordUC,
		cookies:        params.Cookies,
		logger:         params.Logger,
	}
}

// LoginRequest accepts the identifier under identifier, email or username.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required_without_all=Email Username"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password" validate:"required,min=6"`
	Recordarme bool   `json:"recordarme"`
	Remember   bool   `json:"remember"`
}

func (r *LoginRequest) identifier() string {
	for _, v := range []string{r.Identifier, r.Email, r.Username} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=32"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Nombres        string `json:"nombres"`
	Apellidos      string `json:"apellidos"`
	NombreCompleto string `json:"nombreCompleto"`
	Phone          string `json:"phone"`
}

// RegisterPayload is the data entry of a successful registration.
type RegisterPayload struct {
	UsuarioID            uuid.UUID `json:"usuarioId"`
	Email                string    `json:"email"`
	Usuario              string    `json:"usuario"`
	RequiereConfirmacion bool      `json:"requiereConfirmacion"`
	AccessToken          string    `json:"accessToken,omitempty"`
	ExpiresIn            int       `json:"expiresIn,omitempty"`
	TokenType            string    `json:"tokenType,omitempty"`
}

// ForgotPasswordRequest represents the request body for a recovery email.
type ForgotPasswordRequest struct {
	Email      string `json:"email" validate:"required,email"`
	RedirectTo string `json:"redirectTo" validate:"omitempty,url"`
}

// ResetPasswordRequest carries the recovery access token, which may also come
// as a bearer header.
type ResetPasswordRequest struct {
	AccessToken string `json:"accessToken"`
	Password    string `json:"password" validate:"required,min=6"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.identifier(),
		Password:   req.Password,
		RememberMe: req.Recordarme || req.Remember,
		ClientIP:   c.RealIP(),
	})
	if err != nil {
		return err
	}

	h.cookies.Apply(c, out.Session.RefreshToken, out.RememberMe)

	return response.Success(c, http.StatusOK, response.LoginOK, newSessionPayload(out))
}

// Refresh handles GET /auth/login and GET /auth/refresh, rehydrating the
// session from the refresh cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	out, err := h.sessionUC.Refresh(c.Request().Context(), h.cookies.Read(c))
	if err != nil {
		if errors.Is(err, domainerrors.ErrRefreshFailed) {
			h.cookies.Clear(c)
		}

		return err
	}

	h.cookies.Set(c, out.Session.RefreshToken)

	return response.Success(c, http.StatusOK, response.RefreshOK, newSessionPayload(out))
}

// Logout handles POST /auth/logout. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.BearerToken(c); token != "" {
		h.sessionUC.Logout(c.Request().Context(), token)
	}

	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, response.LogoutOK, nil)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	givenNames, surnames := req.Nombres, req.Apellidos
	if strings.TrimSpace(givenNames) == "" && strings.TrimSpace(surnames) == "" {
		givenNames, surnames = entity.SplitFullName(req.NombreCompleto)
	}

	out, err := h.registrationUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		GivenNames: givenNames,
		Surnames:   surnames,
		Phone:      req.Phone,
	})
	if err != nil {
		return err
	}

	payload := RegisterPayload{
		UsuarioID:            out.Profile.ID,
		Email:                out.Profile.Email,
		Usuario:              out.Profile.Username,
		RequiereConfirmacion: out.ConfirmationRequired,
	}
	result := response.RegisterConfirm
	if out.Session != nil {
		payload.AccessToken = out.Session.AccessToken
		payload.ExpiresIn = out.Session.ExpiresIn
		payload.TokenType = out.Session.TokenType
		h.cookies.Set(c, out.Session.RefreshToken)
		result = response.RegisterOK
	}

	return response.Success(c, http.StatusCreated, result, payload)
}

// ForgotPassword handles POST /auth/forgot-password. The answer is the same
// whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	h.passwordUC.ForgotPassword(c.Request().Context(), req.Email, req.RedirectTo)

	return response.Success(c, http.StatusOK, response.RecoveryEmailSent, nil)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token := strings.TrimSpace(req.AccessToken)
	if token == "" {
		token = middleware.BearerToken(c)
	}
	if token == "" {
		return domainerrors.ErrMissingToken
	}

	if err := h.passwordUC.ResetPassword(c.Request().Context(), token, req.Password); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Password reset completed")

	return response.Success(c, http.StatusOK, response.ResetOK, nil)
}
