// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "catalog/internal/domain/entity"

// CredentialHasher turns plaintext passwords into storable hash/salt pairs
// and verifies candidates against them. Implementations hold no mutable state.
type CredentialHasher interface {
	// GenerateSalt returns fresh random salt bytes.
	GenerateSalt() ([]byte, error)

	// DeriveHash derives the base64 encoded key for password and salt.
	// The result is a pure function of its inputs.
	DeriveHash(password string, salt []byte) string

	// Register salts and hashes a new password.
	Register(password string) (*entity.StoredCredential, error)

	// Verify reports whether password matches the stored base64 hash and salt.
	// Malformed stored values never verify.
	Verify(password, storedHash, storedSalt string) bool
}
