package service

// PatternHasher derives and checks pattern hashes.
type PatternHasher interface {
	// Hash generates a fresh random salt and the hash of pattern under it.
	Hash(pattern string) (salt, hash string, err error)

	// Verify recomputes the hash and compares it in constant time.
	Verify(pattern, salt, hash string) bool
}
