package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestor/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicy(sameSite string) *Policy {
	return NewPolicy(&config.Config{Cookie: &config.CookieConfig{
		Name:     "sb-refresh",
		SameSite: sameSite,
		Secure:   true,
		MaxAge:   30 * 24 * time.Hour,
	}})
}

func setCookieHeader(t *testing.T, fn func(c echo.Context)) string {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	fn(c)

	require.Len(t, rec.Result().Header.Values("Set-Cookie"), 1)

	return rec.Result().Header.Get("Set-Cookie")
}

func TestPolicy_Set(t *testing.T) {
	header := setCookieHeader(t, func(c echo.Context) {
		newTestPolicy("None").Set(c, "refresh-token")
	})

	assert.Contains(t, header, "sb-refresh=refresh-token")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=2592000")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "SameSite=None")
}

func TestPolicy_Clear(t *testing.T) {
	header := setCookieHeader(t, func(c echo.Context) {
		newTestPolicy("Lax").Clear(c)
	})

	assert.Contains(t, header, "sb-refresh=;")
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "SameSite=Lax")
}

func TestPolicy_ApplyWithoutRememberClears(t *testing.T) {
	header := setCookieHeader(t, func(c echo.Context) {
		newTestPolicy("None").Apply(c, "refresh-token", false)
	})

	assert.Contains(t, header, "Max-Age=0")
	assert.NotContains(t, header, "refresh-token")
}

func TestPolicy_Read(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "sb-refresh", Value: "abc"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "abc", newTestPolicy("None").Read(c))
	assert.Empty(t, newTestPolicy("None").Read(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
}
