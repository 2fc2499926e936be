package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SkuCache is a read-through cache in front of ProductSku reads.
type SkuCache interface {
	// GetOrLoad returns the cached SKU or calls load once per key and caches the result.
	GetOrLoad(ctx context.Context, id uuid.UUID, load func(ctx context.Context) (*entity.ProductSku, error)) (*entity.ProductSku, error)

	// Invalidate drops the cached entry after a write.
	Invalidate(ctx context.Context, id uuid.UUID) error
}
