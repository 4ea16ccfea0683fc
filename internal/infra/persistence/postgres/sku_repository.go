package postgres

import (
	"context"
	"strings"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"
	"catalog/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// skuRepository implements the repository.SkuRepository interface.
type skuRepository struct {
	q *query.Query
}

// NewSkuRepository is the constructor for skuRepository.
func NewSkuRepository(db *gorm.DB) repository.SkuRepository {
	return &skuRepository{
		q: query.Use(db),
	}
}

// Create persists a new SKU.
func (repo *skuRepository) Create(ctx context.Context, sku *entity.Sku) error {
	skuM := fromSkuDomain(sku)

	if err := repo.q.SkuModel.WithContext(ctx).Create(skuM); err != nil {
		return translateSkuWriteError(err, "failed to create sku")
	}

	sku.ID = skuM.ID
	sku.CreatedAt = skuM.CreatedAt
	sku.UpdatedAt = skuM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of an existing SKU.
func (repo *skuRepository) Update(ctx context.Context, sku *entity.Sku) error {
	skuM := fromSkuDomain(sku)
	skuM.UpdatedAt = time.Now()

	s := repo.q.SkuModel
	result, err := s.WithContext(ctx).
		Where(s.ID.Eq(sku.ID)).
		Select(s.SkuCode, s.Name, s.StyleName, s.Colour, s.Description,
			s.Quantity, s.Price, s.Category, s.Supplier, s.Size, s.UpdatedAt).
		Updates(skuM)
	if err != nil {
		return translateSkuWriteError(err, "failed to update sku")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSkuNotFound
	}

	sku.UpdatedAt = skuM.UpdatedAt

	return nil
}

// Delete removes a SKU by its ID.
func (repo *skuRepository) Delete(ctx context.Context, id int64) error {
	result, err := repo.q.SkuModel.WithContext(ctx).
		Where(repo.q.SkuModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete sku")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSkuNotFound
	}

	return nil
}

// FindByID retrieves a SKU by its ID.
func (repo *skuRepository) FindByID(ctx context.Context, id int64) (*entity.Sku, error) {
	skuM, err := repo.q.SkuModel.WithContext(ctx).
		Where(repo.q.SkuModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSkuNotFound
		}

		return nil, errors.Wrap(err, "failed to find sku by ID")
	}

	return toSkuDomain(skuM), nil
}

// FindByCode retrieves a SKU by its unique code.
func (repo *skuRepository) FindByCode(ctx context.Context, skuCode string) (*entity.Sku, error) {
	skuM, err := repo.q.SkuModel.WithContext(ctx).
		Where(repo.q.SkuModel.SkuCode.Eq(skuCode)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSkuNotFound
		}

		return nil, errors.Wrap(err, "failed to find sku by code")
	}

	return toSkuDomain(skuM), nil
}

// FindAll retrieves every SKU ordered by ID.
func (repo *skuRepository) FindAll(ctx context.Context) ([]*entity.Sku, error) {
	skuModels, err := repo.q.SkuModel.WithContext(ctx).
		Order(repo.q.SkuModel.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skus")
	}

	return toSkuDomainList(skuModels), nil
}

// Search matches term against name, code and category, ignoring case.
func (repo *skuRepository) Search(ctx context.Context, term string) ([]*entity.Sku, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	s := repo.q.SkuModel
	skuModels, err := s.WithContext(ctx).
		Where(s.Name.Lower().Like(pattern)).
		Or(s.SkuCode.Lower().Like(pattern)).
		Or(s.Category.Lower().Like(pattern)).
		Order(s.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search skus")
	}

	return toSkuDomainList(skuModels), nil
}

// FindByCategory retrieves the SKUs of one category.
func (repo *skuRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Sku, error) {
	skuModels, err := repo.q.SkuModel.WithContext(ctx).
		Where(repo.q.SkuModel.Category.Eq(category)).
		Order(repo.q.SkuModel.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find skus by category")
	}

	return toSkuDomainList(skuModels), nil
}

// ListCategories returns the distinct categories in ascending order.
func (repo *skuRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string

	s := repo.q.SkuModel
	if err := s.WithContext(ctx).
		Distinct(s.Category).
		Order(s.Category).
		Pluck(s.Category, &categories); err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func translateSkuWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return repository.ErrDuplicateSkuCode
	}
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(term)
}

// --- Mapper Functions ---

// toSkuDomain converts a GORM SkuModel to a domain Sku entity.
func toSkuDomain(data *model.SkuModel) *entity.Sku {
	if data == nil {
		return nil
	}

	return &entity.Sku{
		ID:          data.ID,
		SkuCode:     data.SkuCode,
		Name:        data.Name,
		StyleName:   data.StyleName,
		Colour:      data.Colour,
		Description: data.Description,
		Quantity:    data.Quantity,
		Price:       data.Price,
		Category:    data.Category,
		Supplier:    data.Supplier,
		Size:        data.Size,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toSkuDomainList(models []*model.SkuModel) []*entity.Sku {
	skus := make([]*entity.Sku, 0, len(models))
	for _, skuM := range models {
		skus = append(skus, toSkuDomain(skuM))
	}

	return skus
}

// fromSkuDomain converts a domain Sku entity to a GORM SkuModel.
func fromSkuDomain(data *entity.Sku) *model.SkuModel {
	if data == nil {
		return nil
	}

	return &model.SkuModel{
		ID:          data.ID,
		SkuCode:     data.SkuCode,
		Name:        data.Name,
		StyleName:   data.StyleName,
		Colour:      data.Colour,
		Description: data.Description,
		Quantity:    data.Quantity,
		Price:       data.Price,
		Category:    data.Category,
		Supplier:    data.Supplier,
		Size:        data.Size,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
