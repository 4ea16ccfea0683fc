// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"hash"
	"io"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random salt bytes per credential.
	SaltLength = 16
	// Iterations is the PBKDF2 iteration count.
	Iterations = 10000
	// KeyLength is the derived key length in bytes (256 bits).
	KeyLength = 32
)

// pbkdf2Hasher implements service.CredentialHasher with PBKDF2-HMAC-SHA256.
type pbkdf2Hasher struct {
	newHash func() hash.Hash
	random  io.Reader
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It fails with ErrAlgorithmUnavailable when SHA-256 is not linked into the binary.
func NewPBKDF2Hasher() (service.CredentialHasher, error) {
	return newPBKDF2Hasher(crypto.SHA256, rand.Reader)
}

func newPBKDF2Hasher(prf crypto.Hash, random io.Reader) (*pbkdf2Hasher, error) {
	if !prf.Available() {
		return nil, domainerrors.ErrAlgorithmUnavailable.WrapMessage("pbkdf2 prf " + prf.String() + " is not available")
	}

	newHash := prf.New
	if prf == crypto.SHA256 {
		newHash = sha256.New
	}

	return &pbkdf2Hasher{
		newHash: newHash,
		random:  random,
	}, nil
}

// GenerateSalt returns SaltLength bytes from the secure random source.
func (h *pbkdf2Hasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return nil, errors.Wrap(err, "failed to read salt")
	}

	return salt, nil
}

// DeriveHash runs PBKDF2 over the UTF-8 bytes of password and returns the key in standard base64.
func (h *pbkdf2Hasher) DeriveHash(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, Iterations, KeyLength, h.newHash)

	return base64.StdEncoding.EncodeToString(key)
}

// Register generates a fresh salt and derives the hash for a new credential.
func (h *pbkdf2Hasher) Register(password string) (*entity.StoredCredential, error) {
	salt, err := h.GenerateSalt()
	if err != nil {
		return nil, err
	}

	return &entity.StoredCredential{
		Hash: h.DeriveHash(password, salt),
		Salt: base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Verify re-derives the hash with the stored salt and compares in constant time.
func (h *pbkdf2Hasher) Verify(password, storedHash, storedSalt string) bool {
	salt, err := base64.StdEncoding.DecodeString(storedSalt)
	if err != nil || len(salt) == 0 {
		return false
	}

	derived := h.DeriveHash(password, salt)

	return subtle.ConstantTimeCompare([]byte(derived), []byte(storedHash)) == 1
}
