package qrcode

import (
	"encoding/json"
	"strconv"
	"strings"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"github.com/skip2/go-qrcode"
)

const labelType = "sku"

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewLabelService creates a QR label service. baseURL, when set, is joined with the SKU ID
// to form the link encoded in each label.
func NewLabelService(size int, errorCorrectionLevel, baseURL string) service.LabelService {
	return &labelService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateSkuLabel encodes the SKU code, ID and link as JSON into a PNG QR code.
func (s *labelService) GenerateSkuLabel(sku *entity.Sku) ([]byte, error) {
	if sku == nil || sku.SkuCode == "" {
		return nil, errors.New("sku code is required for a label")
	}

	payload := service.LabelPayload{
		SkuCode: sku.SkuCode,
		ID:      sku.ID,
		Type:    labelType,
	}
	if s.baseURL != "" {
		payload.URL = s.baseURL + "/" + strconv.FormatInt(sku.ID, 10)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label payload")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseSkuLabel decodes a scanned label payload.
func (s *labelService) ParseSkuLabel(payload string) (*service.LabelPayload, error) {
	var data service.LabelPayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal label payload")
	}

	if data.Type != labelType {
		return nil, errors.Errorf("invalid label type: %s", data.Type)
	}

	if data.SkuCode == "" {
		return nil, errors.New("label has no sku code")
	}

	return &data, nil
}
