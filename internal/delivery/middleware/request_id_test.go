package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "gestor/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")
		return nil
	})(c)
	require.NoError(t, err)

	return c, rec, &buf
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	c, rec, logs := runRequestID(t, "req-123")

	assert.Equal(t, "req-123", deliverycontext.RequestID(c))
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, logs.String(), `"request_id":"req-123"`)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	tests := map[string]string{
		"missing":       "",
		"control chars": "abc\x07def",
		"too long":      strings.Repeat("a", 129),
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			c, rec, _ := runRequestID(t, header)

			id := deliverycontext.RequestID(c)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			assert.Equal(t, id, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}
