package usecase

import (
	"context"

	"gestor/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	GivenNames string
	Surnames   string
	Phone      string
}

// RegisterOutput returns the created profile. Session is nil when the
// provider requires email confirmation first.
type RegisterOutput struct {
	Profile              *entity.Profile
	Session              *entity.Session
	ConfirmationRequired bool
}

// MeOutput is the account behind an access token. Profile may be nil.
type MeOutput struct {
	Account *entity.Account
	Profile *entity.Profile
}

// RegistrationUsecase creates accounts together with their profile.
type RegistrationUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}

// PasswordUsecase handles password recovery.
type PasswordUsecase interface {
	// ForgotPassword never reports whether the email exists.
	ForgotPassword(ctx context.Context, email, redirectTo string)
	ResetPassword(ctx context.Context, accessToken, password string) error
}

// AccountUsecase exposes the current account.
type AccountUsecase interface {
	Me(ctx context.Context, accessToken string) (*MeOutput, error)
}
