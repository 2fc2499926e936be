package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	CrudRepository[entity.Category]

	// FindByName returns active categories with exactly this name.
	FindByName(ctx context.Context, name string) ([]*entity.Category, error)

	// FindByNameContaining returns active categories whose name contains the fragment.
	FindByNameContaining(ctx context.Context, fragment string) ([]*entity.Category, error)

	// FindByDescriptionContaining returns active categories whose description contains the fragment.
	FindByDescriptionContaining(ctx context.Context, fragment string) ([]*entity.Category, error)

	// FindCreatedAfter returns active categories created strictly after t.
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.Category, error)

	// FindCreatedBetween returns active categories created in [from, to].
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.Category, error)

	// FindMostRecent returns the newest active category or ErrRecordNotFound.
	FindMostRecent(ctx context.Context) (*entity.Category, error)

	// FindDeleted returns soft-deleted categories.
	FindDeleted(ctx context.Context) ([]*entity.Category, error)
}

// SubCategoryRepository persists subcategories.
type SubCategoryRepository interface {
	CrudRepository[entity.SubCategory]

	// FindByCategoryID returns the subcategories of one category.
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.SubCategory, error)
}

// ProductRepository persists products and their subcategory tags.
type ProductRepository interface {
	CrudRepository[entity.Product]

	// FindBySubCategoryID returns active products tagged with the subcategory.
	FindBySubCategoryID(ctx context.Context, subCategoryID uuid.UUID) ([]*entity.Product, error)
}

// ProductAttributeRepository persists SKU attributes.
type ProductAttributeRepository interface {
	CrudRepository[entity.ProductAttribute]

	// FindByType returns attributes of one type.
	FindByType(ctx context.Context, attrType entity.AttributeType) ([]*entity.ProductAttribute, error)
}

// ProductSkuRepository persists product variants. Sku codes are unique; a
// duplicate Save fails with domainerrors.ErrSkuAlreadyExists.
type ProductSkuRepository interface {
	CrudRepository[entity.ProductSku]

	// FindByProductID returns the active variants of one product.
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductSku, error)

	// FindBySku returns the variant with the code or ErrRecordNotFound.
	FindBySku(ctx context.Context, sku string) (*entity.ProductSku, error)

	// FindIDsByAttributeID returns the ids of every variant, soft-deleted ones
	// included, whose size, color or brand slot references the attribute.
	FindIDsByAttributeID(ctx context.Context, attributeID uuid.UUID) ([]uuid.UUID, error)
}
