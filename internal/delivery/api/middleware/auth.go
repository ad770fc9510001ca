package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gestor/internal/delivery/context"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/service"
	"gestor/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// AuthMiddleware requires a bearer access token on the request.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// BearerToken returns the token of an "Authorization: Bearer" header, or "".
func BearerToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// Authenticate stores the bearer token in the context. When a signing secret
// is configured the token is verified locally and its claims are stored too;
// otherwise the provider remains the authority.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c)
		if token == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.verifier.Verify(token)
		switch {
		case errors.Is(err, service.ErrTokenVerificationDisabled):
		case err != nil:
			return domainerrors.ErrInvalidToken
		default:
			deliverycontext.SetTokenClaims(c, claims)
			deliverycontext.EnrichLogger(c, slog.String("account_id", claims.AccountID.String()))
		}

		deliverycontext.SetAccessToken(c, token)

		return next(c)
	}
}
