package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLineInput adds one SKU to a cart.
type CartLineInput struct {
	ProductID    uuid.UUID
	ProductSkuID uuid.UUID
	Quantity     int
}

// CartUsecase manages carts and the lines added through them.
type CartUsecase interface {
	Create(ctx context.Context, params entity.CartParams) (*entity.Cart, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Cart, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.CartPatch) (*entity.Cart, error)

	// Delete removes the lines and the cart in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error)

	// AddItem adds a line for an existing SKU to an existing cart.
	AddItem(ctx context.Context, cartID uuid.UUID, input CartLineInput) (*entity.CartItem, error)
	Items(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)
}

// CartItemUsecase manages cart lines individually.
type CartItemUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.CartItemPatch) (*entity.CartItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.CartItem, error)

	FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.CartItem, error)
	FindByProductSkuID(ctx context.Context, productSkuID uuid.UUID) ([]*entity.CartItem, error)
	FindByQuantity(ctx context.Context, quantity int) ([]*entity.CartItem, error)
}
