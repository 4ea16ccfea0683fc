package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"
)

// AuditUsecase keeps the history of catalog changes.
type AuditUsecase interface {
	// RecordSkuEvent stores a delivered event. Redeliveries are accepted and ignored.
	RecordSkuEvent(ctx context.Context, event *service.SkuEvent) error
	// ListSkuHistory returns the recorded events of a SKU, oldest first.
	ListSkuHistory(ctx context.Context, skuID int64) ([]*entity.SkuEventRecord, error)
}
