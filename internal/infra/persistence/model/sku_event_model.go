package model

import "time"

// SkuEventModel is the GORM-specific struct for the 'sku_events' table.
type SkuEventModel struct {
	EventID    string    `gorm:"primaryKey;type:varchar(64)"`
	Type       string    `gorm:"type:varchar(32);not null"`
	SkuID      int64     `gorm:"not null;index:idx_sku_events_sku_id"`
	SkuCode    string    `gorm:"type:varchar(100);not null"`
	RequestID  string    `gorm:"type:varchar(64)"`
	Snapshot   *string   `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SkuEventModel) TableName() string {
	return "sku_events"
}
