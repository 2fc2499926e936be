package entity

import (
	"slices"
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
)

// Wishlist is a user's saved products. Items are owned and torn down with it.
type Wishlist struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Items     []WishListItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt *time.Time     `json:"deleted_at"`
}

// WishlistParams carries the fields accepted on creation.
type WishlistParams struct {
	UserID     uuid.UUID
	ProductIDs []uuid.UUID
}

// WishlistPatch carries the fields a caller may override on update.
type WishlistPatch struct {
	UserID *uuid.UUID
}

// NewWishlist validates params and builds a wishlist with one item per product.
// Item WishlistIDs are assigned when the wishlist is saved.
func NewWishlist(p WishlistParams, now time.Time) (*Wishlist, error) {
	rules := []validation.Rule{
		validation.NotZeroID("userId", "user", p.UserID),
		validation.NotEmpty("items", "items", p.ProductIDs),
	}
	for _, productID := range p.ProductIDs {
		rules = append(rules, validation.NotZeroID("items.productId", "item product", productID))
	}
	if err := validation.Check(rules...); err != nil {
		return nil, err
	}

	items := make([]WishListItem, 0, len(p.ProductIDs))
	for _, productID := range p.ProductIDs {
		items = append(items, WishListItem{
			ProductID: productID,
			DateAdded: now,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return &Wishlist{
		UserID:    p.UserID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks the wishlist header after an update.
func (w *Wishlist) Validate() error {
	return validation.Check(
		validation.NotZeroID("userId", "user", w.UserID),
	)
}

// Apply returns a copy of w with the patch overlaid. Items are copied, not shared.
func (w Wishlist) Apply(p WishlistPatch, now time.Time) Wishlist {
	next := w
	next.UserID = Override(w.UserID, p.UserID)
	next.Items = slices.Clone(w.Items)
	next.UpdatedAt = now

	return next
}

// MarkDeleted returns a copy of w carrying the soft-delete marker.
func (w Wishlist) MarkDeleted(now time.Time) Wishlist {
	next := w
	next.Items = slices.Clone(w.Items)
	next.DeletedAt = &now
	next.UpdatedAt = now

	return next
}

// WishListItem is one saved product of a wishlist.
type WishListItem struct {
	ID         uuid.UUID `json:"id"`
	WishlistID uuid.UUID `json:"wishlist_id"`
	ProductID  uuid.UUID `json:"product_id"`
	DateAdded  time.Time `json:"date_added"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WishListItemParams carries the fields accepted on creation.
// DateAdded defaults to the creation time.
type WishListItemParams struct {
	WishlistID uuid.UUID
	ProductID  uuid.UUID
	DateAdded  *time.Time
}

// WishListItemPatch carries the fields a caller may override on update.
type WishListItemPatch struct {
	ProductID *uuid.UUID
	DateAdded *time.Time
}

// NewWishListItem validates params and builds an item for an existing wishlist.
func NewWishListItem(p WishListItemParams, now time.Time) (*WishListItem, error) {
	item := &WishListItem{
		WishlistID: p.WishlistID,
		ProductID:  p.ProductID,
		DateAdded:  Override(now, p.DateAdded),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the item's references.
func (i *WishListItem) Validate() error {
	return validation.Check(
		validation.NotZeroID("wishlistId", "wishlist", i.WishlistID),
		validation.NotZeroID("productId", "product", i.ProductID),
	)
}

// Apply returns a copy of i with the patch overlaid.
func (i WishListItem) Apply(p WishListItemPatch, now time.Time) WishListItem {
	next := i
	next.ProductID = Override(i.ProductID, p.ProductID)
	next.DateAdded = Override(i.DateAdded, p.DateAdded)
	next.UpdatedAt = now

	return next
}
