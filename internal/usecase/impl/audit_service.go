package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var knownSkuEvents = []string{
	constants.SkuEventCreated,
	constants.SkuEventUpdated,
	constants.SkuEventDeleted,
}

// auditService implements the AuditUsecase interface.
type auditService struct {
	eventRepo repository.SkuEventRepository
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	EventRepo repository.SkuEventRepository
	Logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordSkuEvent stores a delivered event.
func (srv *auditService) RecordSkuEvent(ctx context.Context, event *service.SkuEvent) error {
	if event == nil || event.EventID == "" || event.SkuID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("event_id and sku_id are required")
	}
	if !slices.Contains(knownSkuEvents, event.Type) {
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type " + event.Type)
	}

	inserted, err := srv.eventRepo.Record(ctx, &entity.SkuEventRecord{
		EventID:    event.EventID,
		Type:       event.Type,
		SkuID:      event.SkuID,
		SkuCode:    event.SkuCode,
		RequestID:  deliverycontext.SanitizeRequestID(event.RequestID),
		Snapshot:   event.Sku,
		OccurredAt: event.OccurredAt,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to record sku event")
	}

	if !inserted {
		srv.log(ctx).Info("Duplicate SKU event ignored", slog.String("event_id", event.EventID))

		return nil
	}

	srv.log(ctx).Info("SKU event recorded",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.Int64("sku_id", event.SkuID),
	)

	return nil
}

// ListSkuHistory returns the recorded events of a SKU.
func (srv *auditService) ListSkuHistory(ctx context.Context, skuID int64) ([]*entity.SkuEventRecord, error) {
	records, err := srv.eventRepo.FindBySkuID(ctx, skuID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sku history")
	}

	return records, nil
}
