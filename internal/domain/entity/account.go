// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Metadata keys written at sign-up and read back during profile reconciliation.
const (
	MetaUsername   = "username"
	MetaFullName   = "full_name"
	MetaGivenNames = "nombres"
	MetaSurnames   = "apellidos"
	MetaPhone      = "phone"
)

// fallbackDisplayName is shown when an account carries no usable name at all.
const fallbackDisplayName = "Usuario"

// Account is the identity owned by the external auth provider.
// It is never persisted locally; the Profile references it by ID.
type Account struct {
	ID             uuid.UUID      // Provider-assigned identifier.
	Email          string         // Primary email, may be empty for phone-only accounts.
	Phone          string         // Phone as stored by the provider.
	Metadata       map[string]any // Free-form user metadata supplied at sign-up.
	EmailConfirmed bool           // Whether the provider has confirmed the email.
}

// MetadataString returns the trimmed string stored under key, or "" when the key
// is missing or not a string.
func (a *Account) MetadataString(key string) string {
	if a == nil || a.Metadata == nil {
		return ""
	}
	v, ok := a.Metadata[key].(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(v)
}

// EmailLocalPart returns the part of the email before '@'.
func (a *Account) EmailLocalPart() string {
	if a == nil {
		return ""
	}
	local, _, _ := strings.Cut(a.Email, "@")

	return strings.TrimSpace(local)
}

// DisplayName picks the first of full_name metadata, the given username,
// the email local part and a generic fallback.
func (a *Account) DisplayName(username string) string {
	if name := a.MetadataString(MetaFullName); name != "" {
		return name
	}
	if username != "" {
		return username
	}
	if local := a.EmailLocalPart(); local != "" {
		return local
	}

	return fallbackDisplayName
}
