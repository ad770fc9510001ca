package auth

import (
	"time"

	"gestor/config"
	"gestor/internal/domain/service"
	"gestor/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// providerClaims mirrors the claims the auth provider puts into access tokens.
type providerClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtVerifier validates provider access tokens with the shared HS256 secret.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns a verifier for provider access tokens. Without
// auth.jwtSecret every call returns service.ErrTokenVerificationDisabled.
func NewJWTVerifier(cfg *config.Config) service.TokenVerifier {
	var secret []byte
	if cfg.Auth != nil && cfg.Auth.JWTSecret != "" {
		secret = []byte(cfg.Auth.JWTSecret)
	}

	return &jwtVerifier{
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(5*time.Second),
		),
	}
}

// Verify parses token and returns its claims.
func (v *jwtVerifier) Verify(token string) (*service.TokenClaims, error) {
	if len(v.secret) == 0 {
		return nil, service.ErrTokenVerificationDisabled
	}

	claims := &providerClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}
	if !parsed.Valid {
		return nil, errors.New("access token is not valid")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "access token subject is not a uuid")
	}

	out := &service.TokenClaims{
		AccountID: accountID,
		Email:     claims.Email,
		Role:      claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
