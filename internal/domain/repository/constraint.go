package repository

import "fmt"

// Unique constraint names of the profiles table.
const (
	ConstraintProfileAccountID = "profiles_account_id_key"
	ConstraintProfileUsername  = "profiles_username_key"
	ConstraintProfileEmail     = "profiles_email_key"
)

// ConstraintError reports a unique violation. Constraint is empty when the
// driver did not say which constraint fired.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("unique violation: %v", e.Err)
	}

	return fmt.Sprintf("unique violation on %s: %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
