package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Username constraints enforced by the profile store.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 32
)

// Profile is the local business record bound 1:1 to an Account.
type Profile struct {
	ID         uuid.UUID
	AccountID  uuid.UUID // Unique; at most one profile per account.
	Username   string    // Unique, lowercase, [a-z0-9._-]{3,32}.
	Email      string    // Unique when present.
	Phone      string
	GivenNames string
	Surnames   string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SplitFullName splits "Ana María Pérez Soto" style names into given names and
// surnames. A single word is treated as given names only.
func SplitFullName(full string) (givenNames, surnames string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	case 2:
		return parts[0], parts[1]
	default:
		half := len(parts) / 2
		return strings.Join(parts[:half], " "), strings.Join(parts[half:], " ")
	}
}
