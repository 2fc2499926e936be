package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase manages wishlists and their items.
type WishlistUsecase interface {
	Create(ctx context.Context, params entity.WishlistParams) (*entity.Wishlist, error)

	// Get returns the wishlist with its items loaded.
	Get(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.WishlistPatch) (*entity.Wishlist, error)

	// Delete removes the items and the wishlist in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// SoftDelete hides the wishlist from List; Get still returns it.
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)
	List(ctx context.Context) ([]*entity.Wishlist, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error)

	AddItem(ctx context.Context, wishlistID uuid.UUID, params entity.WishListItemParams) (*entity.WishListItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, patch entity.WishListItemPatch) (*entity.WishListItem, error)

	// RemoveItem deletes an item of the wishlist; NotFound when the item
	// belongs to another wishlist.
	RemoveItem(ctx context.Context, wishlistID, itemID uuid.UUID) error
}
