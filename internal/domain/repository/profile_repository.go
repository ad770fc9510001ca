// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gestor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile matches the lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the persistence operations for profiles.
type ProfileRepository interface {
	// FindByAccountID retrieves the profile bound to the provider account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	// FindByUsername retrieves an active profile by its lowercase username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// FindByPhone retrieves an active profile by its normalised phone.
	FindByPhone(ctx context.Context, phone string) (*entity.Profile, error)

	// FindByEmail retrieves a profile by its lowercase email.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// UsernameExists reports whether any profile holds the username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Create inserts the profile, assigning ID and timestamps.
	// Unique violations surface as *ConstraintError.
	Create(ctx context.Context, profile *entity.Profile) error
}
