package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table.
type CartModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CartID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Cart         *CartModel `gorm:"foreignKey:CartID"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductSkuID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity     int        `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderDetailsModel mirrors the 'order_details' table. It has no payment
// column: payment_details.order_details_id is the only link.
type OrderDetailsModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailsModel) TableName() string {
	return "order_details"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderDetailsID uuid.UUID          `gorm:"type:uuid;not null;index"`
	OrderDetails   *OrderDetailsModel `gorm:"foreignKey:OrderDetailsID"`
	ProductID      uuid.UUID          `gorm:"type:uuid;not null"`
	ProductSkuID   uuid.UUID          `gorm:"type:uuid;not null"`
	Quantity       int                `gorm:"not null"`
	CreatedAt      time.Time          `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time          `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentDetailsModel mirrors the 'payment_details' table. The unique index
// on order_details_id keeps one payment per order.
type PaymentDetailsModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderDetailsID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex"`
	OrderDetails   *OrderDetailsModel `gorm:"foreignKey:OrderDetailsID"`
	Amount         decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Provider       string             `gorm:"type:varchar(64);not null;index"`
	Status         string             `gorm:"type:varchar(32);not null;index"`
	CreatedAt      time.Time          `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt      time.Time          `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentDetailsModel) TableName() string {
	return "payment_details"
}
