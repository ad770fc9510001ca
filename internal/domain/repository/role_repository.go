package repository

import (
	"context"
	"errors"

	"gestor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when the requested role key does not exist.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository manages role lookups and assignments.
type RoleRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.Role, error)

	// Assign links the profile to the role. Assigning twice is a no-op.
	Assign(ctx context.Context, profileID, roleID uuid.UUID) error
}
