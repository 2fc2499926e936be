package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	labelType   = "sku"
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LabelData is the JSON payload encoded into a SKU label.
type LabelData struct {
	Type      string `json:"type"`
	SkuID     string `json:"sku_id"`
	Sku       string `json:"sku"`
	ProductID string `json:"product_id"`
	URL       string `json:"url,omitempty"`
}

// NewLabelService creates the SKU label renderer from cfg.QRCode.
func NewLabelService(cfg *config.Config) service.LabelService {
	size, level, baseURL := defaultSize, "M", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateSkuLabel renders the SKU identity as a PNG QR code.
func (s *labelService) GenerateSkuLabel(sku *entity.ProductSku) ([]byte, error) {
	if sku == nil || sku.ID == uuid.Nil {
		return nil, errors.New("sku label requires a persisted sku")
	}

	data := LabelData{
		Type:      labelType,
		SkuID:     sku.ID.String(),
		Sku:       sku.Sku,
		ProductID: sku.ProductID.String(),
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + sku.ID.String()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
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

// ParseSkuLabel decodes a scanned label payload and returns the SKU id.
func (s *labelService) ParseSkuLabel(payload string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal label data")
	}

	if data.Type != labelType {
		return uuid.Nil, errors.Errorf("invalid label type: %s", data.Type)
	}

	skuID, err := uuid.Parse(data.SkuID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse sku id")
	}

	return skuID, nil
}
