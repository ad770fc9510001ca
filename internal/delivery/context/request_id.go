// Package context carries request-scoped values between echo middleware and
// the use case layer.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is propagated from the client or generated per request.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// RequestID returns the id stored by the request id middleware, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// EnrichLogger adds attrs to the request-scoped logger of c. Outside a
// request scope it does nothing.
func EnrichLogger(c echo.Context, attrs ...any) {
	req := c.Request()
	logger, ok := req.Context().Value(KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return
	}
	c.SetRequest(req.WithContext(WithLogger(req.Context(), logger.With(attrs...))))
}
