package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cartRepository struct {
	crudRepository[entity.Cart, model.CartModel]
}

// NewCartRepository creates a cart store on db.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{crudRepository[entity.Cart, model.CartModel]{
		db:   db,
		name: "cart",
		toEntity: func(m *model.CartModel) *entity.Cart {
			return &entity.Cart{
				ID:        m.ID,
				UserID:    m.UserID,
				Total:     m.Total,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			}
		},
		toModel: func(c *entity.Cart) *model.CartModel {
			return &model.CartModel{
				ID:        c.ID,
				UserID:    c.UserID,
				Total:     c.Total,
				CreatedAt: c.CreatedAt,
				UpdatedAt: c.UpdatedAt,
			}
		},
	}}
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error) {
	return r.find(ctx, "find by user", whereColumn("user_id", userID))
}

type cartItemRepository struct {
	crudRepository[entity.CartItem, model.CartItemModel]
}

// NewCartItemRepository creates a cart line store on db.
func NewCartItemRepository(db *gorm.DB) repository.CartItemRepository {
	return &cartItemRepository{crudRepository[entity.CartItem, model.CartItemModel]{
		db:   db,
		name: "cart item",
		toEntity: func(m *model.CartItemModel) *entity.CartItem {
			return &entity.CartItem{
				ID:           m.ID,
				CartID:       m.CartID,
				ProductID:    m.ProductID,
				ProductSkuID: m.ProductSkuID,
				Quantity:     m.Quantity,
				CreatedAt:    m.CreatedAt,
				UpdatedAt:    m.UpdatedAt,
			}
		},
		toModel: func(i *entity.CartItem) *model.CartItemModel {
			return &model.CartItemModel{
				ID:           i.ID,
				CartID:       i.CartID,
				ProductID:    i.ProductID,
				ProductSkuID: i.ProductSkuID,
				Quantity:     i.Quantity,
				CreatedAt:    i.CreatedAt,
				UpdatedAt:    i.UpdatedAt,
			}
		},
	}}
}

func (r *cartItemRepository) FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	return r.find(ctx, "find by cart", whereColumn("cart_id", cartID))
}

func (r *cartItemRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.CartItem, error) {
	return r.find(ctx, "find by product", whereColumn("product_id", productID))
}

func (r *cartItemRepository) FindByProductSkuID(ctx context.Context, productSkuID uuid.UUID) ([]*entity.CartItem, error) {
	return r.find(ctx, "find by product sku", whereColumn("product_sku_id", productSkuID))
}

func (r *cartItemRepository) FindByQuantity(ctx context.Context, quantity int) ([]*entity.CartItem, error) {
	return r.find(ctx, "find by quantity", whereColumn("quantity", quantity))
}

func (r *cartItemRepository) DeleteByCartID(ctx context.Context, cartID uuid.UUID) (int64, error) {
	return r.deleteWhere(ctx, "delete by cart", "cart_id = ?", cartID)
}
