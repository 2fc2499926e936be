package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists carts.
type CartRepository interface {
	CrudRepository[entity.Cart]

	// FindByUserID returns the carts of one user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error)
}

// CartItemRepository persists cart lines.
type CartItemRepository interface {
	CrudRepository[entity.CartItem]

	FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.CartItem, error)
	FindByProductSkuID(ctx context.Context, productSkuID uuid.UUID) ([]*entity.CartItem, error)
	FindByQuantity(ctx context.Context, quantity int) ([]*entity.CartItem, error)

	// DeleteByCartID removes every line of the cart and returns the number removed.
	DeleteByCartID(ctx context.Context, cartID uuid.UUID) (int64, error)
}
