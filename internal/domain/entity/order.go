package entity

import (
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetails is the order header. Its payment is found through
// PaymentDetails.OrderDetailsID; the order holds no payment reference.
type OrderDetails struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderDetailsParams carries the fields accepted on creation.
type OrderDetailsParams struct {
	UserID uuid.UUID
	Total  *decimal.Decimal
}

// OrderDetailsPatch carries the fields a caller may override on update.
type OrderDetailsPatch struct {
	UserID *uuid.UUID
	Total  *decimal.Decimal
}

// NewOrderDetails validates params and builds an order header.
func NewOrderDetails(p OrderDetailsParams, now time.Time) (*OrderDetails, error) {
	if err := validation.Check(
		validation.NotZeroID("userId", "user", p.UserID),
		validation.NotNil("total", "total", p.Total),
		validation.NotNegative("total", "total", p.Total),
	); err != nil {
		return nil, err
	}

	return &OrderDetails{
		UserID:    p.UserID,
		Total:     *p.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks the order after an update.
func (o *OrderDetails) Validate() error {
	return validation.Check(
		validation.NotZeroID("userId", "user", o.UserID),
		validation.NotNegative("total", "total", &o.Total),
	)
}

// Apply returns a copy of o with the patch overlaid.
func (o OrderDetails) Apply(p OrderDetailsPatch, now time.Time) OrderDetails {
	next := o
	next.UserID = Override(o.UserID, p.UserID)
	next.Total = Override(o.Total, p.Total)
	next.UpdatedAt = now

	return next
}

// OrderItem is one SKU line of an order.
type OrderItem struct {
	ID             uuid.UUID `json:"id"`
	OrderDetailsID uuid.UUID `json:"order_details_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductSkuID   uuid.UUID `json:"product_sku_id"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OrderItemParams carries the fields accepted on creation.
type OrderItemParams struct {
	OrderDetailsID uuid.UUID
	ProductID      uuid.UUID
	ProductSkuID   uuid.UUID
	Quantity       int
}

// OrderItemPatch carries the fields a caller may override on update.
type OrderItemPatch struct {
	OrderDetailsID *uuid.UUID
	ProductID      *uuid.UUID
	ProductSkuID   *uuid.UUID
	Quantity       *int
}

// NewOrderItem validates params and builds an order line.
func NewOrderItem(p OrderItemParams, now time.Time) (*OrderItem, error) {
	item := &OrderItem{
		OrderDetailsID: p.OrderDetailsID,
		ProductID:      p.ProductID,
		ProductSkuID:   p.ProductSkuID,
		Quantity:       p.Quantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks references and quantity.
func (i *OrderItem) Validate() error {
	return validation.Check(
		validation.NotZeroID("orderDetailsId", "order", i.OrderDetailsID),
		validation.NotZeroID("productId", "product", i.ProductID),
		validation.NotZeroID("productSkuId", "product SKU", i.ProductSkuID),
		validation.PositiveInt("quantity", "quantity", i.Quantity),
	)
}

// Apply returns a copy of i with the patch overlaid.
func (i OrderItem) Apply(p OrderItemPatch, now time.Time) OrderItem {
	next := i
	next.OrderDetailsID = Override(i.OrderDetailsID, p.OrderDetailsID)
	next.ProductID = Override(i.ProductID, p.ProductID)
	next.ProductSkuID = Override(i.ProductSkuID, p.ProductSkuID)
	next.Quantity = Override(i.Quantity, p.Quantity)
	next.UpdatedAt = now

	return next
}
