package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type reviewService struct {
	crud[entity.Review]
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		crud:        newCrud[entity.Review](params.ReviewRepo, "review"),
		repo:        params.ReviewRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
	}
}

func (s *reviewService) Create(ctx context.Context, params entity.ReviewParams) (*entity.Review, error) {
	review, err := entity.NewReview(params, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.productRepo, "product", review.ProductID); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.userRepo, "user", review.UserID); err != nil {
		return nil, err
	}

	return s.save(ctx, review)
}

func (s *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return s.get(ctx, id)
}

func (s *reviewService) Update(ctx context.Context, id uuid.UUID, patch entity.ReviewPatch) (*entity.Review, error) {
	return s.update(ctx, id, func(r entity.Review, at time.Time) (entity.Review, error) {
		next := r.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	return s.list(ctx)
}

func (s *reviewService) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *reviewService) FindByRating(ctx context.Context, rating int) ([]*entity.Review, error) {
	return s.repo.FindByRating(ctx, rating)
}

func (s *reviewService) FindByRatingGreaterThan(ctx context.Context, min int) ([]*entity.Review, error) {
	return s.repo.FindByRatingGreaterThan(ctx, min)
}
