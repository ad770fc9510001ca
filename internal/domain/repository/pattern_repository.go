package repository

import (
	"context"
	"errors"

	"gestor/internal/domain/entity"
)

// ErrPatternNotFound is returned when the account has no pattern configured.
var ErrPatternNotFound = errors.New("pattern credential not found")

// PatternRepository stores pattern credentials, one per account.
type PatternRepository interface {
	// Upsert inserts or replaces the credential keyed by AccountID.
	Upsert(ctx context.Context, credential *entity.PatternCredential) error

	FindByEmail(ctx context.Context, email string) (*entity.PatternCredential, error)
}
