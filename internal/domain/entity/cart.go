package entity

import (
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a user's basket. Items reference it through CartItem.CartID.
type Cart struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CartParams carries the fields accepted on creation.
type CartParams struct {
	UserID uuid.UUID
	Total  *decimal.Decimal
}

// CartPatch carries the fields a caller may override on update.
type CartPatch struct {
	UserID *uuid.UUID
	Total  *decimal.Decimal
}

// NewCart validates params and builds a cart.
func NewCart(p CartParams, now time.Time) (*Cart, error) {
	if err := validation.Check(
		validation.NotZeroID("userId", "user", p.UserID),
		validation.NotNil("total", "total", p.Total),
		validation.NotNegative("total", "total", p.Total),
	); err != nil {
		return nil, err
	}

	return &Cart{
		UserID:    p.UserID,
		Total:     *p.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks the cart after an update.
func (c *Cart) Validate() error {
	return validation.Check(
		validation.NotZeroID("userId", "user", c.UserID),
		validation.NotNegative("total", "total", &c.Total),
	)
}

// Apply returns a copy of c with the patch overlaid.
func (c Cart) Apply(p CartPatch, now time.Time) Cart {
	next := c
	next.UserID = Override(c.UserID, p.UserID)
	next.Total = Override(c.Total, p.Total)
	next.UpdatedAt = now

	return next
}

// CartItem is one SKU line in a cart.
type CartItem struct {
	ID           uuid.UUID `json:"id"`
	CartID       uuid.UUID `json:"cart_id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductSkuID uuid.UUID `json:"product_sku_id"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CartItemParams carries the fields accepted on creation.
type CartItemParams struct {
	CartID       uuid.UUID
	ProductID    uuid.UUID
	ProductSkuID uuid.UUID
	Quantity     int
}

// CartItemPatch carries the fields a caller may override on update.
type CartItemPatch struct {
	CartID       *uuid.UUID
	ProductID    *uuid.UUID
	ProductSkuID *uuid.UUID
	Quantity     *int
}

// NewCartItem validates params and builds a cart item.
func NewCartItem(p CartItemParams, now time.Time) (*CartItem, error) {
	item := &CartItem{
		CartID:       p.CartID,
		ProductID:    p.ProductID,
		ProductSkuID: p.ProductSkuID,
		Quantity:     p.Quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks references and quantity.
func (i *CartItem) Validate() error {
	return validation.Check(
		validation.NotZeroID("cartId", "cart", i.CartID),
		validation.NotZeroID("productId", "product", i.ProductID),
		validation.NotZeroID("productSkuId", "product SKU", i.ProductSkuID),
		validation.PositiveInt("quantity", "quantity", i.Quantity),
	)
}

// Apply returns a copy of i with the patch overlaid.
func (i CartItem) Apply(p CartItemPatch, now time.Time) CartItem {
	next := i
	next.CartID = Override(i.CartID, p.CartID)
	next.ProductID = Override(i.ProductID, p.ProductID)
	next.ProductSkuID = Override(i.ProductSkuID, p.ProductSkuID)
	next.Quantity = Override(i.Quantity, p.Quantity)
	next.UpdatedAt = now

	return next
}
