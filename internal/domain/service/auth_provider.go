// Package service defines interfaces for core domain logic and the external
// systems it depends on.
package service

import (
	"context"
	"errors"
	"fmt"

	"gestor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotConfigured is wrapped by admin-only operations when no
// service-role key is available.
var ErrAdminNotConfigured = errors.New("auth provider admin access is not configured")

// ProviderErrorKind classifies an auth provider failure.
type ProviderErrorKind int

const (
	// ProviderRejected is any 4xx the provider returned that has no finer kind.
	ProviderRejected ProviderErrorKind = iota
	ProviderInvalidCredentials
	ProviderEmailNotConfirmed
	ProviderAlreadyRegistered
	ProviderInvalidToken
	// ProviderTimeout covers context deadlines and transport timeouts. It is retryable.
	ProviderTimeout
	// ProviderUnavailable covers 5xx answers and connection failures.
	ProviderUnavailable
)

func (k ProviderErrorKind) String() string {
	switch k {
	case ProviderInvalidCredentials:
		return "invalid_credentials"
	case ProviderEmailNotConfirmed:
		return "email_not_confirmed"
	case ProviderAlreadyRegistered:
		return "already_registered"
	case ProviderInvalidToken:
		return "invalid_token"
	case ProviderTimeout:
		return "timeout"
	case ProviderUnavailable:
		return "unavailable"
	default:
		return "rejected"
	}
}

// ProviderError is the only error type returned by AuthProvider implementations.
type ProviderError struct {
	Kind   ProviderErrorKind
	Status int    // Upstream HTTP status, 0 when no response was received.
	Detail string // Upstream message, safe to log.
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("auth provider %s (status %d): %s", e.Kind, e.Status, e.Detail)
	}

	return fmt.Sprintf("auth provider %s: %s", e.Kind, e.Detail)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderErrorKindOf extracts the kind of a ProviderError in err's chain.
// The second result is false when err is not a provider error.
func ProviderErrorKindOf(err error) (ProviderErrorKind, bool) {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return ProviderRejected, false
	}

	return pe.Kind, true
}

// ProviderErrorDetailOf returns the upstream detail of a ProviderError in err's chain.
func ProviderErrorDetailOf(err error) string {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return ""
	}

	return pe.Detail
}

// SignUpResult is the outcome of a registration. Session is nil when the
// provider requires email confirmation before issuing tokens.
type SignUpResult struct {
	Account *entity.Account
	Session *entity.Session
}

// AuthProvider is the hosted identity system that owns accounts and sessions.
type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error)

	// GetUser resolves the account behind an access token.
	GetUser(ctx context.Context, accessToken string) (*entity.Account, error)

	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*SignUpResult, error)

	// ResetPasswordForEmail asks the provider to mail a recovery link.
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error

	// UpdatePassword changes the password of the account owning accessToken.
	UpdatePassword(ctx context.Context, accessToken, password string) (*entity.Account, error)

	// AdminUpdatePassword changes the password with service-role privileges.
	AdminUpdatePassword(ctx context.Context, accountID uuid.UUID, password string) error

	// IssueOneTimeSession mints a session for email without a password, via an
	// admin-generated magic link verified server-side.
	IssueOneTimeSession(ctx context.Context, email string) (*entity.Session, error)

	// SignOut revokes the session behind accessToken.
	SignOut(ctx context.Context, accessToken string) error
}
