package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineInput is one line of a placed order.
type OrderLineInput struct {
	ProductID    uuid.UUID
	ProductSkuID uuid.UUID
	Quantity     int
}

// PlaceOrderInput creates an order header and its lines together.
type PlaceOrderInput struct {
	UserID uuid.UUID
	Total  *decimal.Decimal
	Items  []OrderLineInput
}

// OrderView is an order as read by clients. PaymentID is nil until a payment
// is recorded.
type OrderView struct {
	Order     *entity.OrderDetails
	PaymentID *uuid.UUID
	Items     []*entity.OrderItem
}

// OrderUsecase manages the order aggregate: header, lines and payment.
type OrderUsecase interface {
	// PlaceOrder writes the header and every line in one transaction.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderView, error)
	Create(ctx context.Context, params entity.OrderDetailsParams) (*entity.OrderDetails, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderView, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.OrderDetailsPatch) (*entity.OrderDetails, error)

	// Delete removes the lines, the payment and the order in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.OrderDetails, error)

	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error)
	FindByUserIDOrderByCreatedAtDesc(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error)
	FindByTotalGreaterThanEqual(ctx context.Context, min decimal.Decimal) ([]*entity.OrderDetails, error)
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error)
	FindUpdatedBefore(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error)
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetails, error)
}

// OrderItemUsecase manages order lines individually.
type OrderItemUsecase interface {
	Create(ctx context.Context, params entity.OrderItemParams) (*entity.OrderItem, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.OrderItemPatch) (*entity.OrderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.OrderItem, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
}

// RecordPaymentInput describes the payment of an existing order.
type RecordPaymentInput struct {
	Amount   *decimal.Decimal
	Provider string
	Status   string
}

// PaymentUsecase manages payments. An order has at most one.
type PaymentUsecase interface {
	// RecordPayment attaches a payment to the order; ErrPaymentAlreadyRecorded
	// when it already has one.
	RecordPayment(ctx context.Context, orderID uuid.UUID, input RecordPaymentInput) (*entity.PaymentDetails, error)
	Create(ctx context.Context, params entity.PaymentDetailsParams) (*entity.PaymentDetails, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.PaymentDetails, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.PaymentDetailsPatch) (*entity.PaymentDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.PaymentDetails, error)

	FindByProvider(ctx context.Context, provider string) ([]*entity.PaymentDetails, error)
	FindByStatus(ctx context.Context, status string) ([]*entity.PaymentDetails, error)
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.PaymentDetails, error)
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.PaymentDetails, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentDetails, error)

	// DeleteByOrderID removes the order's payment; NotFound when it has none.
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}
