package service

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
)

// SkuEvent describes a committed catalog change
type SkuEvent struct {
	EventID    string      `json:"event_id"`
	RequestID  string      `json:"request_id,omitempty"` // For distributed tracing
	Type       string      `json:"type"`
	SkuID      int64       `json:"sku_id"`
	SkuCode    string      `json:"sku_code"`
	Sku        *entity.Sku `json:"sku,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSkuEvent publishes a catalog change event
	PublishSkuEvent(ctx context.Context, event *SkuEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
