package handler

import (
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler serves product reviews.
type ReviewHandler struct {
	reviews usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(reviews usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type reviewRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
}

type reviewPatchRequest struct {
	Rating *int    `json:"rating"`
	Review *string `json:"review"`
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	review, err := h.reviews.Create(c.Request().Context(), entity.ReviewParams{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, review)
}

func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviews.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, review)
}

func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req reviewPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	review, err := h.reviews.Update(c.Request().Context(), id, entity.ReviewPatch{Rating: req.Rating, Review: req.Review})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, review)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviews.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// List filters by ?product_id= when present.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	productID, filtered, err := queryID(c, "product_id")
	if err != nil {
		return err
	}

	var reviews []*entity.Review
	if filtered {
		reviews, err = h.reviews.FindByProductID(ctx, productID)
	} else {
		reviews, err = h.reviews.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, reviews)
}

func (h *ReviewHandler) ByRating(c echo.Context) error {
	rating, err := pathInt(c, "rating")
	if err != nil {
		return err
	}

	reviews, err := h.reviews.FindByRating(c.Request().Context(), rating)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, reviews)
}

func (h *ReviewHandler) RatingAbove(c echo.Context) error {
	rating, err := pathInt(c, "rating")
	if err != nil {
		return err
	}

	reviews, err := h.reviews.FindByRatingGreaterThan(c.Request().Context(), rating)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, reviews)
}
