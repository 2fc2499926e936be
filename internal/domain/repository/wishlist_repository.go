package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistRepository persists wishlists. Save also inserts the items of a new
// wishlist; later item changes go through WishListItemRepository.
type WishlistRepository interface {
	CrudRepository[entity.Wishlist]

	// FindByUserID returns the user's active wishlists without items.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error)

	// FindByIDWithItems loads the wishlist together with its items.
	FindByIDWithItems(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)
}

// WishListItemRepository persists wishlist items.
type WishListItemRepository interface {
	CrudRepository[entity.WishListItem]

	FindByWishlistID(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishListItem, error)

	// DeleteByWishlistID removes every item of the wishlist and returns the number removed.
	DeleteByWishlistID(ctx context.Context, wishlistID uuid.UUID) (int64, error)
}
