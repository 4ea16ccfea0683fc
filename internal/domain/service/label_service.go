package service

import "catalog/internal/domain/entity"

// LabelService renders printable SKU labels.
type LabelService interface {
	// GenerateSkuLabel returns a PNG QR code identifying the SKU.
	GenerateSkuLabel(sku *entity.Sku) ([]byte, error)

	// ParseSkuLabel decodes the payload scanned from a label.
	ParseSkuLabel(payload string) (*LabelPayload, error)
}

// LabelPayload is the JSON document encoded in a SKU label.
type LabelPayload struct {
	SkuCode string `json:"sku_code"`
	ID      int64  `json:"id"`
	URL     string `json:"url,omitempty"`
	Type    string `json:"type"`
}
