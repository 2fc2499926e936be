package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase manages product reviews.
type ReviewUsecase interface {
	Create(ctx context.Context, params entity.ReviewParams) (*entity.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.ReviewPatch) (*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.Review, error)

	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	FindByRating(ctx context.Context, rating int) ([]*entity.Review, error)
	FindByRatingGreaterThan(ctx context.Context, min int) ([]*entity.Review, error)
}
