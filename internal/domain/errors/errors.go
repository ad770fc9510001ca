package errors

import (
	"net/http"

	"gestor/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, e.g. "AUTH.INVALID_CREDENTIALS"
	Message() string   // User-facing message
	Details() string   // Optional detail, rendered as the single data entry
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.errorCode + ": " + e.message + " (" + e.details + ")"
	}

	return e.errorCode + ": " + e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying the given detail.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a replacement message, used for aggregated
// validation messages.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError with the same business code, so copies produced by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// CodeOf returns the business code of the first AppError in err's chain, or ""
// when err carries none.
func CodeOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

// Predefined error types
var (
	// Request validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION.BAD_REQUEST",
		"Solicitud inválida",
		"",
	)

	ErrUnsupportedContentType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"VALIDATION.UNSUPPORTED_CONTENT_TYPE",
		"Content-Type debe ser application/json",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"VALIDATION.PAYLOAD_TOO_LARGE",
		"El cuerpo de la solicitud es demasiado grande",
		"",
	)

	// Routing
	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"HTTP.METHOD_NOT_ALLOWED",
		"Método no permitido",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"HTTP.NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"AUTH.INVALID_CREDENTIALS",
		"Usuario o contraseña inválidos",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"AUTH.MISSING_TOKEN",
		"Falta el token de acceso",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"AUTH.INVALID_TOKEN",
		"Token inválido o expirado",
		"",
	)

	ErrNoRefreshCookie = NewBaseError(
		http.StatusUnauthorized,
		"AUTH.NO_REFRESH_COOKIE",
		"No hay cookie de sesión",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH.REFRESH_FAILED",
		"No se pudo rehidratar sesión",
		"",
	)

	ErrSessionTimeout = NewBaseError(
		http.StatusServiceUnavailable,
		"AUTH.PROVIDER_TIMEOUT",
		"El proveedor de autenticación no respondió a tiempo",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		http.StatusBadGateway,
		"AUTH.PROVIDER_UNAVAILABLE",
		"El proveedor de autenticación no está disponible",
		"",
	)

	ErrSessionIssueFailed = NewBaseError(
		http.StatusBadGateway,
		"AUTH.SESSION_ISSUE_FAILED",
		"No se pudo emitir la sesión",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"AUTH.TOO_MANY_ATTEMPTS",
		"Demasiados intentos, intenta más tarde",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"AUTH.EMAIL_IN_USE",
		"El correo ya está registrado",
		"",
	)

	ErrSignupFailed = NewBaseError(
		http.StatusBadRequest,
		"AUTH.SIGNUP_FAILED",
		"No se pudo registrar",
		"",
	)

	ErrResetFailed = NewBaseError(
		http.StatusBadRequest,
		"AUTH.RESET_FAILED",
		"No se pudo actualizar la contraseña",
		"",
	)

	// Profile store
	ErrLookupFailed = NewBaseError(
		http.StatusInternalServerError,
		"DB.SELECT_FAILED",
		"No se pudo resolver el usuario",
		"",
	)

	ErrInsertFailed = NewBaseError(
		http.StatusInternalServerError,
		"DB.INSERT_FAILED",
		"Error en BD al crear usuario",
		"",
	)

	ErrUpsertFailed = NewBaseError(
		http.StatusInternalServerError,
		"DB.UPSERT_FAILED",
		"No se pudo guardar el patrón",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusConflict,
		"DB.DUPLICATE.USERNAME",
		"El nombre de usuario ya está en uso",
		"",
	)

	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DB.DUPLICATE.EMAIL",
		"El correo ya tiene un perfil",
		"",
	)

	ErrDuplicateAccount = NewBaseError(
		http.StatusConflict,
		"DB.DUPLICATE.AUTH_USER",
		"La cuenta ya tiene un perfil",
		"",
	)

	ErrDuplicate = NewBaseError(
		http.StatusConflict,
		"DB.DUPLICATE",
		"Registro duplicado",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error inesperado",
		"",
	)
)
