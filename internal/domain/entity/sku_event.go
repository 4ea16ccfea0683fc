package entity

import "time"

// SkuEventRecord is one catalog change as received by the audit worker.
type SkuEventRecord struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	SkuID      int64     `json:"sku_id"`
	SkuCode    string    `json:"sku_code"`
	RequestID  string    `json:"request_id,omitempty"`
	Snapshot   *Sku      `json:"snapshot,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	ReceivedAt time.Time `json:"received_at"`
}
