package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTokenVerificationDisabled is returned when no signing secret is configured
// and the caller must fall back to AuthProvider.GetUser.
var ErrTokenVerificationDisabled = errors.New("access token verification disabled")

// TokenClaims are the fields read from a provider access token.
type TokenClaims struct {
	AccountID uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenVerifier checks provider-issued access tokens locally.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
