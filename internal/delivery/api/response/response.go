// Package response renders the uniform JSON envelope of the API.
package response

import (
	"net/http"

	domainerrors "gestor/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Result is the code and message of a successful operation.
type Result struct {
	Code    string
	Message string
}

// Success results.
var (
	LoginOK           = Result{Code: "AUTH.LOGIN_OK", Message: "Sesión iniciada"}
	RefreshOK         = Result{Code: "AUTH.REFRESH_OK", Message: "Sesión rehidratada"}
	LogoutOK          = Result{Code: "AUTH.LOGOUT_OK", Message: "Sesión cerrada"}
	RegisterOK        = Result{Code: "AUTH.REGISTER_OK", Message: "Usuario registrado y sesión iniciada"}
	RegisterConfirm   = Result{Code: "AUTH.REGISTER_OK", Message: "Usuario registrado. Revisa tu correo para confirmar la cuenta."}
	RecoveryEmailSent = Result{Code: "AUTH.RECOVERY_EMAIL_SENT", Message: "Si el correo existe, se envió un enlace de recuperación."}
	ResetOK           = Result{Code: "AUTH.RESET_OK", Message: "Contraseña actualizada"}
	MeOK              = Result{Code: "AUTH.ME_OK", Message: "Sesión válida"}
)

// Success writes {status:"success", code, message, data:[payload]}. A nil
// payload yields an empty data array.
func Success(c echo.Context, statusCode int, result Result, payload any) error {
	data := []any{}
	if payload != nil {
		data = append(data, payload)
	}

	return c.JSON(statusCode, domainerrors.Envelope{
		Status:  domainerrors.StatusSuccess,
		Code:    result.Code,
		Message: result.Message,
		Data:    data,
	})
}

// Error writes {status:"error", code, message, data:[detail]}.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	data := []any{}
	if detail := appErr.Details(); detail != "" {
		data = append(data, detail)
	}

	return c.JSON(appErr.HTTPCode(), domainerrors.Envelope{
		Status:  domainerrors.StatusError,
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
		Data:    data,
	})
}

// NoContent answers 204 without a body.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
