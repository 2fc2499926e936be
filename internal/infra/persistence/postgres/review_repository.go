package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct {
	crudRepository[entity.Review, model.ReviewModel]
}

// NewReviewRepository creates a review store on db.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{crudRepository[entity.Review, model.ReviewModel]{
		db:   db,
		name: "review",
		toEntity: func(m *model.ReviewModel) *entity.Review {
			return &entity.Review{
				ID:        m.ID,
				ProductID: m.ProductID,
				UserID:    m.UserID,
				Rating:    m.Rating,
				Review:    m.Review,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			}
		},
		toModel: func(r *entity.Review) *model.ReviewModel {
			return &model.ReviewModel{
				ID:        r.ID,
				ProductID: r.ProductID,
				UserID:    r.UserID,
				Rating:    r.Rating,
				Review:    r.Review,
				CreatedAt: r.CreatedAt,
				UpdatedAt: r.UpdatedAt,
			}
		},
	}}
}

func (r *reviewRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	return r.find(ctx, "find by product", whereColumn("product_id", productID))
}

func (r *reviewRepository) FindByRating(ctx context.Context, rating int) ([]*entity.Review, error) {
	return r.find(ctx, "find by rating", whereColumn("rating", rating))
}

func (r *reviewRepository) FindByRatingGreaterThan(ctx context.Context, min int) ([]*entity.Review, error) {
	return r.find(ctx, "find by rating", func(db *gorm.DB) *gorm.DB {
		return db.Where("rating > ?", min)
	})
}
