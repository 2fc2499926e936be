package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderDetailsRepository struct {
	crudRepository[entity.OrderDetails, model.OrderDetailsModel]
}

// NewOrderDetailsRepository creates an order store on db.
func NewOrderDetailsRepository(db *gorm.DB) repository.OrderDetailsRepository {
	return &orderDetailsRepository{crudRepository[entity.OrderDetails, model.OrderDetailsModel]{
		db:   db,
		name: "order",
		toEntity: func(m *model.OrderDetailsModel) *entity.OrderDetails {
			return &entity.OrderDetails{
				ID:        m.ID,
				UserID:    m.UserID,
				Total:     m.Total,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			}
		},
		toModel: func(o *entity.OrderDetails) *model.OrderDetailsModel {
			return &model.OrderDetailsModel{
				ID:        o.ID,
				UserID:    o.UserID,
				Total:     o.Total,
				CreatedAt: o.CreatedAt,
				UpdatedAt: o.UpdatedAt,
			}
		},
	}}
}

func (r *orderDetailsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error) {
	return r.find(ctx, "find by user", whereColumn("user_id", userID))
}

func (r *orderDetailsRepository) FindByUserIDOrderByCreatedAtDesc(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error) {
	var models []*model.OrderDetailsModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.translate(err, "find by user")
	}

	return r.toEntities(models), nil
}

func (r *orderDetailsRepository) FindByTotalGreaterThanEqual(ctx context.Context, min decimal.Decimal) ([]*entity.OrderDetails, error) {
	return r.find(ctx, "find by total", func(db *gorm.DB) *gorm.DB {
		return db.Where("total >= ?", min)
	})
}

func (r *orderDetailsRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error) {
	return r.find(ctx, "find created after", createdAfter(t))
}

func (r *orderDetailsRepository) FindUpdatedBefore(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error) {
	return r.find(ctx, "find updated before", func(db *gorm.DB) *gorm.DB {
		return db.Where("updated_at < ?", t)
	})
}

func (r *orderDetailsRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetails, error) {
	var models []*model.OrderDetailsModel
	err := r.db.WithContext(ctx).
		Joins("JOIN payment_details ON payment_details.order_details_id = order_details.id").
		Where("payment_details.id = ?", paymentID).
		Order("order_details.created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.translate(err, "find by payment")
	}

	return r.toEntities(models), nil
}

type orderItemRepository struct {
	crudRepository[entity.OrderItem, model.OrderItemModel]
}

// NewOrderItemRepository creates an order line store on db.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{crudRepository[entity.OrderItem, model.OrderItemModel]{
		db:   db,
		name: "order item",
		toEntity: func(m *model.OrderItemModel) *entity.OrderItem {
			return &entity.OrderItem{
				ID:             m.ID,
				OrderDetailsID: m.OrderDetailsID,
				ProductID:      m.ProductID,
				ProductSkuID:   m.ProductSkuID,
				Quantity:       m.Quantity,
				CreatedAt:      m.CreatedAt,
				UpdatedAt:      m.UpdatedAt,
			}
		},
		toModel: func(i *entity.OrderItem) *model.OrderItemModel {
			return &model.OrderItemModel{
				ID:             i.ID,
				OrderDetailsID: i.OrderDetailsID,
				ProductID:      i.ProductID,
				ProductSkuID:   i.ProductSkuID,
				Quantity:       i.Quantity,
				CreatedAt:      i.CreatedAt,
				UpdatedAt:      i.UpdatedAt,
			}
		},
	}}
}

func (r *orderItemRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	return r.find(ctx, "find by order", whereColumn("order_details_id", orderID))
}

func (r *orderItemRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	return r.deleteWhere(ctx, "delete by order", "order_details_id = ?", orderID)
}

type paymentDetailsRepository struct {
	crudRepository[entity.PaymentDetails, model.PaymentDetailsModel]
}

// NewPaymentDetailsRepository creates a payment store on db.
func NewPaymentDetailsRepository(db *gorm.DB) repository.PaymentDetailsRepository {
	return &paymentDetailsRepository{crudRepository[entity.PaymentDetails, model.PaymentDetailsModel]{
		db:        db,
		name:      "payment",
		duplicate: domainerrors.ErrPaymentAlreadyRecorded,
		toEntity: func(m *model.PaymentDetailsModel) *entity.PaymentDetails {
			return &entity.PaymentDetails{
				ID:             m.ID,
				OrderDetailsID: m.OrderDetailsID,
				Amount:         m.Amount,
				Provider:       m.Provider,
				Status:         m.Status,
				CreatedAt:      m.CreatedAt,
				UpdatedAt:      m.UpdatedAt,
			}
		},
		toModel: func(p *entity.PaymentDetails) *model.PaymentDetailsModel {
			return &model.PaymentDetailsModel{
				ID:             p.ID,
				OrderDetailsID: p.OrderDetailsID,
				Amount:         p.Amount,
				Provider:       p.Provider,
				Status:         p.Status,
				CreatedAt:      p.CreatedAt,
				UpdatedAt:      p.UpdatedAt,
			}
		},
	}}
}

func (r *paymentDetailsRepository) FindByProvider(ctx context.Context, provider string) ([]*entity.PaymentDetails, error) {
	return r.find(ctx, "find by provider", whereColumn("provider", provider))
}

func (r *paymentDetailsRepository) FindByStatus(ctx context.Context, status string) ([]*entity.PaymentDetails, error) {
	return r.find(ctx, "find by status", whereColumn("status", status))
}

func (r *paymentDetailsRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.PaymentDetails, error) {
	return r.find(ctx, "find created after", createdAfter(t))
}

func (r *paymentDetailsRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.PaymentDetails, error) {
	return r.find(ctx, "find created between", createdBetween(from, to))
}

func (r *paymentDetailsRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PaymentDetailsModel{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, r.translate(err, "count by status")
	}

	return count, nil
}

func (r *paymentDetailsRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentDetails, error) {
	return r.first(ctx, "find by order", whereColumn("order_details_id", orderID))
}

func (r *paymentDetailsRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	return r.deleteWhere(ctx, "delete by order", "order_details_id = ?", orderID)
}
