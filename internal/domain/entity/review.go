package entity

import (
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating and comment on a product.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewParams carries the fields accepted on creation.
type ReviewParams struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Review    string
}

// ReviewPatch carries the fields a caller may override on update.
type ReviewPatch struct {
	Rating *int
	Review *string
}

// NewReview validates params and builds a review.
func NewReview(p ReviewParams, now time.Time) (*Review, error) {
	r := &Review{
		ProductID: p.ProductID,
		UserID:    p.UserID,
		Rating:    p.Rating,
		Review:    p.Review,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks text, rating range and references.
func (r *Review) Validate() error {
	return validation.Check(
		validation.NotBlank("review", "review", r.Review),
		validation.InRange("rating", "rating", r.Rating, MinRating, MaxRating),
		validation.NotZeroID("productId", "product", r.ProductID),
		validation.NotZeroID("userId", "user", r.UserID),
	)
}

// Apply returns a copy of r with the patch overlaid.
func (r Review) Apply(p ReviewPatch, now time.Time) Review {
	next := r
	next.Rating = Override(r.Rating, p.Rating)
	next.Review = Override(r.Review, p.Review)
	next.UpdatedAt = now

	return next
}
