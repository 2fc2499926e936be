package entity

import (
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributeType is the dimension a ProductAttribute describes.
type AttributeType string

const (
	AttributeSize  AttributeType = "SIZE"
	AttributeColor AttributeType = "COLOR"
	AttributeBrand AttributeType = "BRAND"
)

// IsValid checks if the AttributeType is a known value.
func (t AttributeType) IsValid() bool {
	switch t {
	case AttributeSize, AttributeColor, AttributeBrand:
		return true
	default:
		return false
	}
}

func (t AttributeType) String() string {
	return string(t)
}

// ProductAttribute is one typed value a SKU can reference, e.g. SIZE=XL.
type ProductAttribute struct {
	ID        uuid.UUID     `json:"id"`
	Type      AttributeType `json:"type"`
	Value     string        `json:"value"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ProductAttributeParams carries the fields accepted on creation.
type ProductAttributeParams struct {
	Type  AttributeType
	Value string
}

// ProductAttributePatch carries the fields a caller may override on update.
type ProductAttributePatch struct {
	Type  *AttributeType
	Value *string
}

// NewProductAttribute validates params and builds an attribute.
func NewProductAttribute(p ProductAttributeParams, now time.Time) (*ProductAttribute, error) {
	a := &ProductAttribute{
		Type:      p.Type,
		Value:     p.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks the attribute's required fields.
func (a *ProductAttribute) Validate() error {
	return validation.Check(
		validation.Must("type", "type", "must be one of SIZE, COLOR, BRAND", a.Type.IsValid()),
		validation.NotBlank("value", "value", a.Value),
	)
}

// Apply returns a copy of a with the patch overlaid.
func (a ProductAttribute) Apply(p ProductAttributePatch, now time.Time) ProductAttribute {
	next := a
	next.Type = Override(a.Type, p.Type)
	next.Value = Override(a.Value, p.Value)
	next.UpdatedAt = now

	return next
}

// Ref returns the reference a SKU stores for this attribute.
func (a *ProductAttribute) Ref() AttributeRef {
	return AttributeRef{ID: a.ID, Type: a.Type, Value: a.Value}
}

// AttributeRef is a SKU's resolved link to one ProductAttribute.
type AttributeRef struct {
	ID    uuid.UUID     `json:"id"`
	Type  AttributeType `json:"type"`
	Value string        `json:"value"`
}

// ProductSku is one purchasable variant of a product.
type ProductSku struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Size      AttributeRef    `json:"size_attribute"`
	Color     AttributeRef    `json:"color_attribute"`
	Brand     AttributeRef    `json:"brand_attribute"`
	Sku       string          `json:"sku"` // External identifier of record; unique.
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
}

// ProductSkuParams carries the fields accepted on creation.
type ProductSkuParams struct {
	ProductID uuid.UUID
	Size      AttributeRef
	Color     AttributeRef
	Brand     AttributeRef
	Sku       string
	Price     decimal.Decimal
	Quantity  int
}

// ProductSkuPatch carries the fields a caller may override on update.
type ProductSkuPatch struct {
	ProductID *uuid.UUID
	Size      *AttributeRef
	Color     *AttributeRef
	Brand     *AttributeRef
	Sku       *string
	Price     *decimal.Decimal
	Quantity  *int
}

// NewProductSku validates params and builds an active SKU.
func NewProductSku(p ProductSkuParams, now time.Time) (*ProductSku, error) {
	sku := &ProductSku{
		ProductID: p.ProductID,
		Size:      p.Size,
		Color:     p.Color,
		Brand:     p.Brand,
		Sku:       p.Sku,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	return sku, nil
}

// Validate checks references, attribute types and numeric bounds.
func (s *ProductSku) Validate() error {
	return validation.Check(
		validation.NotZeroID("productId", "product", s.ProductID),
		validation.NotZeroID("sizeAttribute", "size attribute", s.Size.ID),
		validation.NotZeroID("colorAttribute", "color attribute", s.Color.ID),
		validation.NotZeroID("brandAttribute", "brand attribute", s.Brand.ID),
		validation.NotBlank("sku", "sku", s.Sku),
		validation.Positive("price", "price", s.Price),
		validation.PositiveInt("quantity", "quantity", s.Quantity),
		attributeTypeRule("sizeAttribute", "size attribute", s.Size, AttributeSize),
		attributeTypeRule("colorAttribute", "color attribute", s.Color, AttributeColor),
		attributeTypeRule("brandAttribute", "brand attribute", s.Brand, AttributeBrand),
	)
}

// attributeTypeRule matches by type only; an unset reference is reported by NotZeroID.
func attributeTypeRule(field, subject string, ref AttributeRef, want AttributeType) validation.Rule {
	return validation.Must(field, subject, "must be of type "+want.String(),
		ref.ID == uuid.Nil || ref.Type == want)
}

// Apply returns a copy of s with the patch overlaid.
func (s ProductSku) Apply(p ProductSkuPatch, now time.Time) ProductSku {
	next := s
	next.ProductID = Override(s.ProductID, p.ProductID)
	next.Size = Override(s.Size, p.Size)
	next.Color = Override(s.Color, p.Color)
	next.Brand = Override(s.Brand, p.Brand)
	next.Sku = Override(s.Sku, p.Sku)
	next.Price = Override(s.Price, p.Price)
	next.Quantity = Override(s.Quantity, p.Quantity)
	next.UpdatedAt = now

	return next
}

// MarkDeleted returns a copy of s carrying the soft-delete marker.
func (s ProductSku) MarkDeleted(now time.Time) ProductSku {
	next := s
	next.DeletedAt = &now
	next.UpdatedAt = now

	return next
}
