package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
	"catalog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// skuService implements the SkuUsecase interface.
type skuService struct {
	txManager repository.TransactionManager
	skuRepo   repository.SkuRepository
	labels    service.LabelService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// SkuServiceParams holds dependencies for SkuService, injected by Fx.
type SkuServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SkuRepo   repository.SkuRepository
	Labels    service.LabelService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSkuService is the constructor for skuService.
func NewSkuService(params SkuServiceParams) usecase.SkuUsecase {
	return &skuService{
		txManager: params.TxManager,
		skuRepo:   params.SkuRepo,
		labels:    params.Labels,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *skuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSkus returns every SKU ordered by ID.
func (srv *skuService) ListSkus(ctx context.Context) ([]*entity.Sku, error) {
	skus, err := srv.skuRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skus")
	}

	return skus, nil
}

// GetSku returns one SKU by ID.
func (srv *skuService) GetSku(ctx context.Context, id int64) (*entity.Sku, error) {
	sku, err := srv.skuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSkuRepoError(err, "id "+strconv.FormatInt(id, 10))
	}

	return sku, nil
}

// GetSkuByCode returns one SKU by its code.
func (srv *skuService) GetSkuByCode(ctx context.Context, skuCode string) (*entity.Sku, error) {
	sku, err := srv.skuRepo.FindByCode(ctx, skuCode)
	if err != nil {
		return nil, mapSkuRepoError(err, "code "+skuCode)
	}

	return sku, nil
}

// CreateSku stores a new SKU after checking that its code is free.
func (srv *skuService) CreateSku(ctx context.Context, input *usecase.SkuInput) (*entity.Sku, error) {
	sku := &entity.Sku{}
	applySkuInput(sku, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skuRepo := repoFactory.SkuRepo()

		if err := ensureCodeAvailable(ctx, skuRepo, sku.SkuCode); err != nil {
			return err
		}

		if err := skuRepo.Create(ctx, sku); err != nil {
			return mapSkuRepoError(err, "code "+sku.SkuCode)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("SKU created", slog.Int64("sku_id", sku.ID), slog.String("sku_code", sku.SkuCode))
	srv.publish(ctx, constants.SkuEventCreated, sku)

	return sku, nil
}

// UpdateSku replaces the fields of an existing SKU.
func (srv *skuService) UpdateSku(ctx context.Context, id int64, input *usecase.SkuInput) (*entity.Sku, error) {
	var updated *entity.Sku

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skuRepo := repoFactory.SkuRepo()

		existing, err := skuRepo.FindByID(ctx, id)
		if err != nil {
			return mapSkuRepoError(err, "id "+strconv.FormatInt(id, 10))
		}

		newCode := strings.TrimSpace(input.SkuCode)
		if newCode != existing.SkuCode {
			if err := ensureCodeAvailable(ctx, skuRepo, newCode); err != nil {
				return err
			}
		}

		applySkuInput(existing, input)
		if err := skuRepo.Update(ctx, existing); err != nil {
			return mapSkuRepoError(err, "code "+existing.SkuCode)
		}
		updated = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("SKU updated", slog.Int64("sku_id", updated.ID), slog.String("sku_code", updated.SkuCode))
	srv.publish(ctx, constants.SkuEventUpdated, updated)

	return updated, nil
}

// DeleteSku removes a SKU.
func (srv *skuService) DeleteSku(ctx context.Context, id int64) error {
	var deleted *entity.Sku

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skuRepo := repoFactory.SkuRepo()

		existing, err := skuRepo.FindByID(ctx, id)
		if err != nil {
			return mapSkuRepoError(err, "id "+strconv.FormatInt(id, 10))
		}

		if err := skuRepo.Delete(ctx, id); err != nil {
			return mapSkuRepoError(err, "id "+strconv.FormatInt(id, 10))
		}
		deleted = existing

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("SKU deleted", slog.Int64("sku_id", id))
	srv.publish(ctx, constants.SkuEventDeleted, deleted)

	return nil
}

// SearchSkus matches term against name, code and category.
func (srv *skuService) SearchSkus(ctx context.Context, term string) ([]*entity.Sku, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return srv.ListSkus(ctx)
	}

	skus, err := srv.skuRepo.Search(ctx, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search skus")
	}

	return skus, nil
}

// ListSkusByCategory returns the SKUs of one category.
func (srv *skuService) ListSkusByCategory(ctx context.Context, category string) ([]*entity.Sku, error) {
	skus, err := srv.skuRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skus by category")
	}

	return skus, nil
}

// ListCategories returns the distinct categories.
func (srv *skuService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.skuRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GenerateLabel renders the QR label of a SKU.
func (srv *skuService) GenerateLabel(ctx context.Context, id int64) ([]byte, error) {
	sku, err := srv.GetSku(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.labels.GenerateSkuLabel(sku)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate sku label")
	}

	return png, nil
}

// publish emits a catalog event after commit. Failures are logged and never fail the write.
func (srv *skuService) publish(ctx context.Context, eventType string, sku *entity.Sku) {
	event := &service.SkuEvent{
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		SkuID:      sku.ID,
		SkuCode:    sku.SkuCode,
		Sku:        sku,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishSkuEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish SKU event",
			slog.String("type", eventType),
			slog.Int64("sku_id", sku.ID),
			slog.Any("error", err),
		)
	}
}

func ensureCodeAvailable(ctx context.Context, skuRepo repository.SkuRepository, skuCode string) error {
	_, err := skuRepo.FindByCode(ctx, skuCode)
	if err == nil {
		return domainerrors.ErrSkuCodeConflict.WrapMessage("code " + skuCode)
	}
	if errors.Is(err, repository.ErrSkuNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to check sku code")
}

// applySkuInput copies input onto sku, normalising the display fields.
func applySkuInput(sku *entity.Sku, input *usecase.SkuInput) {
	sku.SkuCode = strings.TrimSpace(input.SkuCode)
	sku.Name = util.SmartCapitalize(input.Name)
	sku.StyleName = util.SmartCapitalize(input.StyleName)
	sku.Colour = util.SmartCapitalize(input.Colour)
	sku.Category = util.SmartCapitalize(input.Category)
	sku.Description = input.Description
	sku.Quantity = input.Quantity
	sku.Price = input.Price
	sku.Supplier = input.Supplier
	sku.Size = input.Size
}

func mapSkuRepoError(err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrSkuNotFound):
		return domainerrors.ErrSkuNotFound.WrapMessage(details)
	case errors.Is(err, repository.ErrDuplicateSkuCode):
		return domainerrors.ErrSkuCodeConflict.WrapMessage(details)
	default:
		return errors.Wrap(err, details)
	}
}
