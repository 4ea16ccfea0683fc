package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// SkuEventRepository stores the audit trail of catalog changes.
type SkuEventRepository interface {
	// Record stores an event once. It reports false when the event ID was already recorded.
	Record(ctx context.Context, record *entity.SkuEventRecord) (bool, error)
	// FindBySkuID returns the events of one SKU, oldest first.
	FindBySkuID(ctx context.Context, skuID int64) ([]*entity.SkuEventRecord, error)
}
