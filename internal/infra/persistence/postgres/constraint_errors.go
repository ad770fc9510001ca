package postgres

import (
	"gestor/internal/domain/repository"
	"gestor/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// constraintName returns the name of the violated constraint, if the driver reported one.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// translateWriteError converts unique violations into *repository.ConstraintError
// and wraps anything else with msg.
func translateWriteError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return &repository.ConstraintError{Constraint: constraintName(err), Err: err}
	}

	return errors.Wrap(err, msg)
}
