package postgres

import (
	"context"
	"encoding/json"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"
	"catalog/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// skuEventRepository implements the repository.SkuEventRepository interface.
type skuEventRepository struct {
	q *query.Query
}

// NewSkuEventRepository is the constructor for skuEventRepository.
func NewSkuEventRepository(db *gorm.DB) repository.SkuEventRepository {
	return &skuEventRepository{
		q: query.Use(db),
	}
}

// Record inserts the event, ignoring redeliveries of an already stored event ID.
func (repo *skuEventRepository) Record(ctx context.Context, record *entity.SkuEventRecord) (bool, error) {
	eventM, err := fromSkuEventDomain(record)
	if err != nil {
		return false, err
	}

	// The generated Create hides RowsAffected, which tells a redelivery apart.
	result := repo.q.SkuEventModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: string(repo.q.SkuEventModel.EventID.ColumnName())}},
			DoNothing: true,
		}).
		UnderlyingDB().
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record sku event")
	}

	return result.RowsAffected > 0, nil
}

// FindBySkuID returns the events of one SKU, oldest first.
func (repo *skuEventRepository) FindBySkuID(ctx context.Context, skuID int64) ([]*entity.SkuEventRecord, error) {
	e := repo.q.SkuEventModel
	eventsM, err := e.WithContext(ctx).
		Where(e.SkuID.Eq(skuID)).
		Order(e.OccurredAt, e.EventID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sku events")
	}

	records := make([]*entity.SkuEventRecord, 0, len(eventsM))
	for _, eventM := range eventsM {
		record, err := toSkuEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// --- Mapper Functions ---

func toSkuEventDomain(data *model.SkuEventModel) (*entity.SkuEventRecord, error) {
	record := &entity.SkuEventRecord{
		EventID:    data.EventID,
		Type:       data.Type,
		SkuID:      data.SkuID,
		SkuCode:    data.SkuCode,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}

	if data.Snapshot != nil {
		var snapshot entity.Sku
		if err := json.Unmarshal([]byte(*data.Snapshot), &snapshot); err != nil {
			return nil, errors.Wrapf(err, "failed to decode snapshot of event %s", data.EventID)
		}
		record.Snapshot = &snapshot
	}

	return record, nil
}

func fromSkuEventDomain(data *entity.SkuEventRecord) (*model.SkuEventModel, error) {
	eventM := &model.SkuEventModel{
		EventID:    data.EventID,
		Type:       data.Type,
		SkuID:      data.SkuID,
		SkuCode:    data.SkuCode,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
	if eventM.ReceivedAt.IsZero() {
		eventM.ReceivedAt = time.Now()
	}

	if data.Snapshot != nil {
		raw, err := json.Marshal(data.Snapshot)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode sku snapshot")
		}
		snapshot := string(raw)
		eventM.Snapshot = &snapshot
	}

	return eventM, nil
}
