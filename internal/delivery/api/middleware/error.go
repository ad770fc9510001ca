package middleware

import (
	"log/slog"
	"net/http"

	"gestor/internal/delivery/api/response"
	deliverycontext "gestor/internal/delivery/context"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/errors"

	"github.com/labstack/echo/v4"
)

// echoStatusErrors maps router and framework statuses onto API errors.
var echoStatusErrors = map[int]*domainerrors.BaseError{
	http.StatusBadRequest:            domainerrors.ErrValidationFailed,
	http.StatusNotFound:              domainerrors.ErrNotFound,
	http.StatusMethodNotAllowed:      domainerrors.ErrMethodNotAllowed,
	http.StatusRequestEntityTooLarge: domainerrors.ErrPayloadTooLarge,
	http.StatusUnsupportedMediaType:  domainerrors.ErrUnsupportedContentType,
	http.StatusUnauthorized:          domainerrors.ErrMissingToken,
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}
		_ = response.Error(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if mapped, ok := echoStatusErrors[httpErr.Code]; ok {
			_ = response.Error(c, mapped)

			return
		}
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// Internal details stay in the log.
	_ = response.Error(c, domainerrors.ErrInternalError)
}
