package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatternCredential is the secondary unlock pattern of an account.
// Salt and Hash are hex strings; the raw pattern is never stored.
type PatternCredential struct {
	AccountID uuid.UUID
	Email     string
	Salt      string
	Hash      string
	UpdatedAt time.Time
}
