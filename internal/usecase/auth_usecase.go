// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gestor/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput carries a password login. Identifier is an email, username or phone.
type LoginInput struct {
	Identifier string
	Password   string
	RememberMe bool
	ClientIP   string
}

// PatternLoginInput carries a pattern login.
type PatternLoginInput struct {
	Identifier string
	Pattern    string
	RememberMe bool
	ClientIP   string
}

// --- Output DTOs ---

// LoginOutput is an issued session plus the reconciled profile of its account.
type LoginOutput struct {
	Session    *entity.Session
	Profile    *entity.Profile
	RememberMe bool
}

// DisplayName is the name shown to the user after sign-in.
func (o *LoginOutput) DisplayName() string {
	username := ""
	if o.Profile != nil {
		username = o.Profile.Username
	}

	return o.Session.Account.DisplayName(username)
}

// CredentialResolver maps a login identifier to the canonical account email.
type CredentialResolver interface {
	Resolve(ctx context.Context, identifier string) (string, error)
}

// ProfileReconciler guarantees exactly one profile per account.
type ProfileReconciler interface {
	EnsureProfile(ctx context.Context, account *entity.Account) (*entity.Profile, error)
}

// SessionUsecase issues, refreshes and ends provider sessions.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout is best effort and never fails.
	Logout(ctx context.Context, accessToken string)
}

// PatternUsecase manages the secondary pattern factor.
type PatternUsecase interface {
	SetPattern(ctx context.Context, accessToken, pattern string) error
	PatternLogin(ctx context.Context, input PatternLoginInput) (*LoginOutput, error)
}
