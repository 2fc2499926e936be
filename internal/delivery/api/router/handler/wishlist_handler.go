package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler serves wishlists and their items.
type WishlistHandler struct {
	wishlists usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlists usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

type wishlistRequest struct {
	UserID     uuid.UUID   `json:"user_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

type wishlistPatchRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

type wishlistItemRequest struct {
	ProductID uuid.UUID  `json:"product_id"`
	DateAdded *time.Time `json:"date_added"`
}

type wishlistItemPatchRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	DateAdded *time.Time `json:"date_added"`
}

func (h *WishlistHandler) Create(c echo.Context) error {
	var req wishlistRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	wishlist, err := h.wishlists.Create(c.Request().Context(), entity.WishlistParams{
		UserID:     req.UserID,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, wishlist)
}

func (h *WishlistHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	wishlist, err := h.wishlists.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, wishlist)
}

func (h *WishlistHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req wishlistPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	wishlist, err := h.wishlists.Update(c.Request().Context(), id, entity.WishlistPatch{UserID: req.UserID})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, wishlist)
}

func (h *WishlistHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.wishlists.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *WishlistHandler) SoftDelete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	wishlist, err := h.wishlists.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, wishlist)
}

// List filters by ?user_id= when present.
func (h *WishlistHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID, filtered, err := queryID(c, "user_id")
	if err != nil {
		return err
	}

	var wishlists []*entity.Wishlist
	if filtered {
		wishlists, err = h.wishlists.FindByUserID(ctx, userID)
	} else {
		wishlists, err = h.wishlists.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, wishlists)
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	wishlistID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req wishlistItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.wishlists.AddItem(c.Request().Context(), wishlistID, entity.WishListItemParams{
		ProductID: req.ProductID,
		DateAdded: req.DateAdded,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, item)
}

func (h *WishlistHandler) UpdateItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var req wishlistItemPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.wishlists.UpdateItem(c.Request().Context(), itemID, entity.WishListItemPatch{
		ProductID: req.ProductID,
		DateAdded: req.DateAdded,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, item)
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	wishlistID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	if err := h.wishlists.RemoveItem(c.Request().Context(), wishlistID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}
