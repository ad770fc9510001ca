package context

import (
	"gestor/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	KeyAccessToken ContextKey = "access_token"
	KeyTokenClaims ContextKey = "token_claims"
)

// SetAccessToken stores the bearer token in echo.Context.
func SetAccessToken(c echo.Context, token string) {
	c.Set(string(KeyAccessToken), token)
}

// GetAccessToken returns the bearer token stored by the auth middleware, or "".
func GetAccessToken(c echo.Context) string {
	token, _ := c.Get(string(KeyAccessToken)).(string)

	return token
}

// SetTokenClaims stores locally verified claims in echo.Context.
func SetTokenClaims(c echo.Context, claims *service.TokenClaims) {
	c.Set(string(KeyTokenClaims), claims)
}

// GetTokenClaims returns verified claims, or nil when verification is disabled.
func GetTokenClaims(c echo.Context) *service.TokenClaims {
	claims, _ := c.Get(string(KeyTokenClaims)).(*service.TokenClaims)

	return claims
}
