package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetailsRepository persists order headers.
type OrderDetailsRepository interface {
	CrudRepository[entity.OrderDetails]

	// FindByUserID returns the user's orders, oldest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error)

	// FindByUserIDOrderByCreatedAtDesc returns the user's orders, newest first.
	FindByUserIDOrderByCreatedAtDesc(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error)

	// FindByTotalGreaterThanEqual returns orders with total >= min.
	FindByTotalGreaterThanEqual(ctx context.Context, min decimal.Decimal) ([]*entity.OrderDetails, error)

	// FindCreatedAfter returns orders created strictly after t.
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error)

	// FindUpdatedBefore returns orders last modified strictly before t.
	FindUpdatedBefore(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error)

	// FindByPaymentID returns the order the payment belongs to; empty when the
	// payment does not exist.
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetails, error)
}

// OrderItemRepository persists order lines.
type OrderItemRepository interface {
	CrudRepository[entity.OrderItem]

	// FindByOrderID returns the lines of one order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// DeleteByOrderID removes every line of the order and returns the number removed.
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

// PaymentDetailsRepository persists payments. Each order has at most one;
// a second Save for the same order fails with domainerrors.ErrPaymentAlreadyRecorded.
type PaymentDetailsRepository interface {
	CrudRepository[entity.PaymentDetails]

	FindByProvider(ctx context.Context, provider string) ([]*entity.PaymentDetails, error)
	FindByStatus(ctx context.Context, status string) ([]*entity.PaymentDetails, error)

	// FindCreatedAfter returns payments created strictly after t.
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.PaymentDetails, error)

	// FindCreatedBetween returns payments created in [from, to].
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.PaymentDetails, error)

	CountByStatus(ctx context.Context, status string) (int64, error)

	// FindByOrderID returns the order's payment or ErrRecordNotFound.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentDetails, error)

	// DeleteByOrderID removes the order's payment and returns the number removed.
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}
