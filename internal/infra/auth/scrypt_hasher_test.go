package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewScryptHasher()

	salt, hash, err := hasher.Hash("1-2-3-6-9")
	require.NoError(t, err)

	rawSalt, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, 16)

	rawHash, err := hex.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, rawHash, 64)

	assert.True(t, hasher.Verify("1-2-3-6-9", salt, hash))
	assert.False(t, hasher.Verify("1-2-3-6-8", salt, hash))
	assert.False(t, hasher.Verify("", salt, hash))
}

func TestScryptHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewScryptHasher()

	salt1, hash1, err := hasher.Hash("7-4-1")
	require.NoError(t, err)
	salt2, hash2, err := hasher.Hash("7-4-1")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestScryptHasher_RejectsMalformedHash(t *testing.T) {
	hasher := NewScryptHasher()
	salt, hash, err := hasher.Hash("1-5-9")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("1-5-9", salt, "not-hex"))
	assert.False(t, hasher.Verify("1-5-9", salt, hash[:32]))
	assert.False(t, hasher.Verify("1-5-9", "other-salt", hash))
}
