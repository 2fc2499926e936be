package service

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// LabelService renders and reads the QR labels printed for SKUs.
type LabelService interface {
	// GenerateSkuLabel returns a PNG QR code identifying the SKU.
	GenerateSkuLabel(sku *entity.ProductSku) ([]byte, error)

	// ParseSkuLabel decodes the scanned label payload into the SKU id.
	ParseSkuLabel(payload string) (uuid.UUID, error)
}
