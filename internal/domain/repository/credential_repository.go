package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrCredentialNotFound is returned when no credential exists for a username.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateUsername is returned when the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
)

// CredentialRepository stores username/hash/salt records.
type CredentialRepository interface {
	// Create persists a new credential.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUsername retrieves the credential for a username.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// ExistsByUsername reports whether a credential exists for the username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
