package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type categoryService struct {
	crud[entity.Category]
	repo   repository.CategoryRepository
	logger *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		crud:   newCrud[entity.Category](params.CategoryRepo, "category"),
		repo:   params.CategoryRepo,
		logger: params.Logger,
	}
}

func (s *categoryService) Create(ctx context.Context, params entity.CategoryParams) (*entity.Category, error) {
	category, err := entity.NewCategory(params, now())
	if err != nil {
		return nil, err
	}

	saved, err := s.save(ctx, category)
	if err != nil {
		return nil, err
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Category created", slog.Any("categoryID", saved.ID))

	return saved, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return s.get(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, patch entity.CategoryPatch) (*entity.Category, error) {
	return s.update(ctx, id, func(c entity.Category, at time.Time) (entity.Category, error) {
		next := c.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *categoryService) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return s.update(ctx, id, func(c entity.Category, at time.Time) (entity.Category, error) {
		return c.MarkDeleted(at), nil
	})
}

func (s *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	return s.list(ctx)
}

func (s *categoryService) FindByName(ctx context.Context, name string) ([]*entity.Category, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *categoryService) FindByNameContaining(ctx context.Context, fragment string) ([]*entity.Category, error) {
	return s.repo.FindByNameContaining(ctx, fragment)
}

func (s *categoryService) FindByDescriptionContaining(ctx context.Context, fragment string) ([]*entity.Category, error) {
	return s.repo.FindByDescriptionContaining(ctx, fragment)
}

func (s *categoryService) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.Category, error) {
	return s.repo.FindCreatedAfter(ctx, t)
}

func (s *categoryService) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.Category, error) {
	return s.repo.FindCreatedBetween(ctx, from, to)
}

func (s *categoryService) FindMostRecent(ctx context.Context) (*entity.Category, error) {
	category, err := s.repo.FindMostRecent(ctx)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.NewNotFoundErrorByKey("category", "most recent")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find most recent category")
	}

	return category, nil
}

func (s *categoryService) FindDeleted(ctx context.Context) ([]*entity.Category, error) {
	return s.repo.FindDeleted(ctx)
}

type subCategoryService struct {
	crud[entity.SubCategory]
	repo         repository.SubCategoryRepository
	categoryRepo repository.CategoryRepository
}

// SubCategoryServiceParams holds dependencies for SubCategoryService, injected by Fx.
type SubCategoryServiceParams struct {
	fx.In

	SubCategoryRepo repository.SubCategoryRepository
	CategoryRepo    repository.CategoryRepository
}

// NewSubCategoryService is the constructor for subCategoryService.
func NewSubCategoryService(params SubCategoryServiceParams) usecase.SubCategoryUsecase {
	return &subCategoryService{
		crud:         newCrud[entity.SubCategory](params.SubCategoryRepo, "subcategory"),
		repo:         params.SubCategoryRepo,
		categoryRepo: params.CategoryRepo,
	}
}

func (s *subCategoryService) Create(ctx context.Context, params entity.SubCategoryParams) (*entity.SubCategory, error) {
	sub, err := entity.NewSubCategory(params, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.categoryRepo, "category", sub.CategoryID); err != nil {
		return nil, err
	}

	return s.save(ctx, sub)
}

func (s *subCategoryService) Get(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	return s.get(ctx, id)
}

func (s *subCategoryService) Update(ctx context.Context, id uuid.UUID, patch entity.SubCategoryPatch) (*entity.SubCategory, error) {
	if patch.CategoryID != nil {
		if err := mustExist(ctx, s.categoryRepo, "category", *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	return s.update(ctx, id, func(c entity.SubCategory, at time.Time) (entity.SubCategory, error) {
		next := c.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *subCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *subCategoryService) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return s.list(ctx)
}

func (s *subCategoryService) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.SubCategory, error) {
	return s.repo.FindByCategoryID(ctx, categoryID)
}
