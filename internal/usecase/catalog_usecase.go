// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryUsecase manages catalog categories.
type CategoryUsecase interface {
	Create(ctx context.Context, params entity.CategoryParams) (*entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.CategoryPatch) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SoftDelete marks the category deleted; it stays readable by id.
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)

	FindByName(ctx context.Context, name string) ([]*entity.Category, error)
	FindByNameContaining(ctx context.Context, fragment string) ([]*entity.Category, error)
	FindByDescriptionContaining(ctx context.Context, fragment string) ([]*entity.Category, error)
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.Category, error)
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.Category, error)
	FindMostRecent(ctx context.Context) (*entity.Category, error)
	FindDeleted(ctx context.Context) ([]*entity.Category, error)
}

// SubCategoryUsecase manages subcategories. The owning category must exist.
type SubCategoryUsecase interface {
	Create(ctx context.Context, params entity.SubCategoryParams) (*entity.SubCategory, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.SubCategoryPatch) (*entity.SubCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.SubCategory, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.SubCategory, error)
}

// ProductUsecase manages products. Every tagged subcategory must exist.
type ProductUsecase interface {
	Create(ctx context.Context, params entity.ProductParams) (*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	FindBySubCategoryID(ctx context.Context, subCategoryID uuid.UUID) ([]*entity.Product, error)
}

// ProductAttributeUsecase manages the typed values SKUs are composed from.
type ProductAttributeUsecase interface {
	Create(ctx context.Context, params entity.ProductAttributeParams) (*entity.ProductAttribute, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ProductAttribute, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.ProductAttributePatch) (*entity.ProductAttribute, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.ProductAttribute, error)
	FindByType(ctx context.Context, attrType entity.AttributeType) ([]*entity.ProductAttribute, error)
}

// CreateSkuInput references the product and attributes by id; the service
// resolves them before building the SKU.
type CreateSkuInput struct {
	ProductID        uuid.UUID
	SizeAttributeID  uuid.UUID
	ColorAttributeID uuid.UUID
	BrandAttributeID uuid.UUID
	Sku              string
	Price            decimal.Decimal
	Quantity         int
}

// UpdateSkuInput is a partial SKU update; nil fields keep their value.
type UpdateSkuInput struct {
	ProductID        *uuid.UUID
	SizeAttributeID  *uuid.UUID
	ColorAttributeID *uuid.UUID
	BrandAttributeID *uuid.UUID
	Sku              *string
	Price            *decimal.Decimal
	Quantity         *int
}

// ProductSkuUsecase manages purchasable variants.
type ProductSkuUsecase interface {
	Create(ctx context.Context, input CreateSkuInput) (*entity.ProductSku, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ProductSku, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSkuInput) (*entity.ProductSku, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.ProductSku, error)
	List(ctx context.Context) ([]*entity.ProductSku, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductSku, error)
	FindBySku(ctx context.Context, sku string) (*entity.ProductSku, error)

	// Label renders the SKU's QR label as PNG.
	Label(ctx context.Context, id uuid.UUID) ([]byte, error)

	// FindByLabel returns the SKU a scanned label points at.
	FindByLabel(ctx context.Context, payload string) (*entity.ProductSku, error)
}
