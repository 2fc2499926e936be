package handler

import (
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CartHandler serves carts and cart lines.
type CartHandler struct {
	carts usecase.CartUsecase
	items usecase.CartItemUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(carts usecase.CartUsecase, items usecase.CartItemUsecase) *CartHandler {
	return &CartHandler{carts: carts, items: items}
}

type cartRequest struct {
	UserID uuid.UUID        `json:"user_id"`
	Total  *decimal.Decimal `json:"total"`
}

type cartPatchRequest struct {
	UserID *uuid.UUID       `json:"user_id"`
	Total  *decimal.Decimal `json:"total"`
}

type cartLineRequest struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductSkuID uuid.UUID `json:"product_sku_id"`
	Quantity     int       `json:"quantity"`
}

type cartItemPatchRequest struct {
	CartID       *uuid.UUID `json:"cart_id"`
	ProductID    *uuid.UUID `json:"product_id"`
	ProductSkuID *uuid.UUID `json:"product_sku_id"`
	Quantity     *int       `json:"quantity"`
}

func (h *CartHandler) CreateCart(c echo.Context) error {
	var req cartRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.carts.Create(c.Request().Context(), entity.CartParams{UserID: req.UserID, Total: req.Total})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, cart)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cart, err := h.carts.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, cart)
}

func (h *CartHandler) UpdateCart(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req cartPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.carts.Update(c.Request().Context(), id, entity.CartPatch{UserID: req.UserID, Total: req.Total})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, cart)
}

func (h *CartHandler) DeleteCart(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.carts.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// ListCarts filters by ?user_id= when present.
func (h *CartHandler) ListCarts(c echo.Context) error {
	ctx := c.Request().Context()
	userID, filtered, err := queryID(c, "user_id")
	if err != nil {
		return err
	}

	var carts []*entity.Cart
	if filtered {
		carts, err = h.carts.FindByUserID(ctx, userID)
	} else {
		carts, err = h.carts.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, carts)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	cartID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req cartLineRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.carts.AddItem(c.Request().Context(), cartID, usecase.CartLineInput{
		ProductID:    req.ProductID,
		ProductSkuID: req.ProductSkuID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, item)
}

func (h *CartHandler) CartItems(c echo.Context) error {
	cartID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.carts.Items(c.Request().Context(), cartID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, items)
}

func (h *CartHandler) GetItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.items.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, item)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req cartItemPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.items.Update(c.Request().Context(), id, entity.CartItemPatch{
		CartID:       req.CartID,
		ProductID:    req.ProductID,
		ProductSkuID: req.ProductSkuID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, item)
}

func (h *CartHandler) DeleteItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// ListItems accepts one of ?cart_id=, ?product_id=, ?product_sku_id= or ?quantity=.
func (h *CartHandler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	finders := []struct {
		param string
		find  func(uuid.UUID) ([]*entity.CartItem, error)
	}{
		{"cart_id", func(id uuid.UUID) ([]*entity.CartItem, error) { return h.items.FindByCartID(ctx, id) }},
		{"product_id", func(id uuid.UUID) ([]*entity.CartItem, error) { return h.items.FindByProductID(ctx, id) }},
		{"product_sku_id", func(id uuid.UUID) ([]*entity.CartItem, error) { return h.items.FindByProductSkuID(ctx, id) }},
	}
	for _, f := range finders {
		id, present, err := queryID(c, f.param)
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		items, err := f.find(id)
		if err != nil {
			return errors.WithStack(err)
		}

		return ok(c, items)
	}

	if raw := c.QueryParam("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return invalidParam("quantity")
		}
		items, err := h.items.FindByQuantity(ctx, quantity)
		if err != nil {
			return errors.WithStack(err)
		}

		return ok(c, items)
	}

	items, err := h.items.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, items)
}
