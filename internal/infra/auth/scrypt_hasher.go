// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"gestor/internal/domain/service"
	"gestor/internal/errors"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters for pattern hashes. Changing any of them invalidates every
// stored pattern.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// scryptHasher is a concrete implementation of the PatternHasher interface using scrypt.
type scryptHasher struct{}

// NewScryptHasher is the constructor for scryptHasher.
func NewScryptHasher() service.PatternHasher {
	return &scryptHasher{}
}

// Hash draws a random 16 byte salt and returns it together with the derived key,
// both hex-encoded. The hex form of the salt is what gets fed to scrypt.
func (h *scryptHasher) Hash(pattern string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "generate pattern salt")
	}
	salt = hex.EncodeToString(raw)

	key, err := derive(pattern, salt)
	if err != nil {
		return "", "", err
	}

	return salt, hex.EncodeToString(key), nil
}

// Verify recomputes the key and compares it in constant time.
func (h *scryptHasher) Verify(pattern, salt, hash string) bool {
	expected, err := hex.DecodeString(hash)
	if err != nil || len(expected) != scryptKeyLen {
		return false
	}

	key, err := derive(pattern, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func derive(pattern, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(pattern), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "derive pattern key")
	}

	return key, nil
}
