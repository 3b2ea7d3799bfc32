package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// PasswordHasher defines the interface for one-way password hashing.
type PasswordHasher interface {
	// Hash returns a one-way digest of the plaintext password.
	Hash(password string) string
}

// SHA256Hasher implements PasswordHasher with a hex-encoded SHA-256 digest.
// The digest is deterministic and fixed-length (64 hex characters), matching
// the stored-password wire contract.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash implements the PasswordHasher interface.
func (h *SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
