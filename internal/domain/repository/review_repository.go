package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	CrudRepository[entity.Review]

	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	FindByRating(ctx context.Context, rating int) ([]*entity.Review, error)

	// FindByRatingGreaterThan returns reviews with rating > min.
	FindByRatingGreaterThan(ctx context.Context, min int) ([]*entity.Review, error)
}
