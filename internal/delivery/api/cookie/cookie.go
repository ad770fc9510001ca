// Package cookie writes the refresh-token cookie.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"gestor/config"

	"github.com/labstack/echo/v4"
)

// Policy shapes the refresh cookie. It is fixed at startup from config.
type Policy struct {
	Name     string
	Domain   string
	SameSite http.SameSite
	Secure   bool
	MaxAge   time.Duration
}

// NewPolicy builds the policy from the cookie section of config.
func NewPolicy(cfg *config.Config) *Policy {
	c := cfg.Cookie

	return &Policy{
		Name:     c.Name,
		Domain:   c.Domain,
		SameSite: parseSameSite(c.SameSite),
		Secure:   c.Secure,
		MaxAge:   c.MaxAge,
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}

func (p *Policy) base(value string) *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    value,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

// Set stores refreshToken for MaxAge.
func (p *Policy) Set(c echo.Context, refreshToken string) {
	ck := p.base(refreshToken)
	ck.MaxAge = int(p.MaxAge / time.Second)
	c.SetCookie(ck)
}

// Clear expires the cookie immediately (Max-Age=0).
func (p *Policy) Clear(c echo.Context) {
	ck := p.base("")
	ck.MaxAge = -1
	c.SetCookie(ck)
}

// Apply sets the cookie when remember is true and clears any existing one otherwise.
func (p *Policy) Apply(c echo.Context, refreshToken string, remember bool) {
	if remember && refreshToken != "" {
		p.Set(c, refreshToken)
		return
	}
	p.Clear(c)
}

// Read returns the refresh token sent by the client, or "".
func (p *Policy) Read(c echo.Context) string {
	ck, err := c.Cookie(p.Name)
	if err != nil {
		return ""
	}

	return ck.Value
}
