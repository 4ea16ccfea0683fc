package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"
	"catalog/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	q *query.Query
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		q: query.Use(db),
	}
}

// Create persists a new credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.q.CredentialModel.WithContext(ctx).Create(credentialM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindByUsername retrieves the credential for a username.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	credentialM, err := repo.q.CredentialModel.WithContext(ctx).
		Where(repo.q.CredentialModel.Username.Eq(username)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(credentialM), nil
}

// ExistsByUsername reports whether a credential exists for the username.
func (repo *credentialRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := repo.q.CredentialModel.WithContext(ctx).
		Where(repo.q.CredentialModel.Username.Eq(username)).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		CreatedAt:    data.CreatedAt,
	}
}
