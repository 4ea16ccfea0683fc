package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the stored login record for a username.
// PasswordHash and PasswordSalt are base64 encoded; the plaintext password is never kept.
type Credential struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	PasswordSalt string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredCredential is the hash/salt pair produced when a password is registered.
type StoredCredential struct {
	Hash string
	Salt string
}
