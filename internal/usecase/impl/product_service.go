package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	crud[entity.Product]
	repo            repository.ProductRepository
	subCategoryRepo repository.SubCategoryRepository
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo     repository.ProductRepository
	SubCategoryRepo repository.SubCategoryRepository
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		crud:            newCrud[entity.Product](params.ProductRepo, "product"),
		repo:            params.ProductRepo,
		subCategoryRepo: params.SubCategoryRepo,
	}
}

func (s *productService) Create(ctx context.Context, params entity.ProductParams) (*entity.Product, error) {
	product, err := entity.NewProduct(params, now())
	if err != nil {
		return nil, err
	}
	if err := s.checkSubCategories(ctx, product.SubCategoryIDs); err != nil {
		return nil, err
	}

	return s.save(ctx, product)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.get(ctx, id)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error) {
	if patch.SubCategoryIDs != nil {
		if err := s.checkSubCategories(ctx, *patch.SubCategoryIDs); err != nil {
			return nil, err
		}
	}

	return s.update(ctx, id, func(p entity.Product, at time.Time) (entity.Product, error) {
		next := p.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *productService) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.update(ctx, id, func(p entity.Product, at time.Time) (entity.Product, error) {
		return p.MarkDeleted(at), nil
	})
}

func (s *productService) List(ctx context.Context) ([]*entity.Product, error) {
	return s.list(ctx)
}

func (s *productService) FindBySubCategoryID(ctx context.Context, subCategoryID uuid.UUID) ([]*entity.Product, error) {
	return s.repo.FindBySubCategoryID(ctx, subCategoryID)
}

func (s *productService) checkSubCategories(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if err := mustExist(ctx, s.subCategoryRepo, "subcategory", id); err != nil {
			return err
		}
	}

	return nil
}

type productAttributeService struct {
	crud[entity.ProductAttribute]
	repo    repository.ProductAttributeRepository
	skuRepo repository.ProductSkuRepository
	cache   service.SkuCache
	logger  *slog.Logger
}

// ProductAttributeServiceParams holds dependencies for ProductAttributeService, injected by Fx.
type ProductAttributeServiceParams struct {
	fx.In

	AttributeRepo repository.ProductAttributeRepository
	SkuRepo       repository.ProductSkuRepository
	Cache         service.SkuCache `optional:"true"`
	Logger        *slog.Logger
}

// NewProductAttributeService is the constructor for productAttributeService.
func NewProductAttributeService(params ProductAttributeServiceParams) usecase.ProductAttributeUsecase {
	return &productAttributeService{
		crud:    newCrud[entity.ProductAttribute](params.AttributeRepo, "product attribute"),
		repo:    params.AttributeRepo,
		skuRepo: params.SkuRepo,
		cache:   params.Cache,
		logger:  params.Logger,
	}
}

func (s *productAttributeService) Create(ctx context.Context, params entity.ProductAttributeParams) (*entity.ProductAttribute, error) {
	attr, err := entity.NewProductAttribute(params, now())
	if err != nil {
		return nil, err
	}

	return s.save(ctx, attr)
}

func (s *productAttributeService) Get(ctx context.Context, id uuid.UUID) (*entity.ProductAttribute, error) {
	return s.get(ctx, id)
}

// Update refuses a type change while SKUs reference the attribute. Referencing
// SKUs are evicted from the cache once the new value is stored.
func (s *productAttributeService) Update(ctx context.Context, id uuid.UUID, patch entity.ProductAttributePatch) (*entity.ProductAttribute, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	skuIDs, err := s.skuRepo.FindIDsByAttributeID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find SKUs referencing product attribute")
	}
	if patch.Type != nil && *patch.Type != current.Type && len(skuIDs) > 0 {
		return nil, domainerrors.NewIntegrityViolation("product attribute", "change type", domainerrors.ErrAttributeInUse)
	}

	next := current.Apply(patch, now())
	if err := next.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}
	for _, skuID := range skuIDs {
		invalidateSku(ctx, s.cache, s.logger, skuID)
	}

	return saved, nil
}

func (s *productAttributeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *productAttributeService) List(ctx context.Context) ([]*entity.ProductAttribute, error) {
	return s.list(ctx)
}

func (s *productAttributeService) FindByType(ctx context.Context, attrType entity.AttributeType) ([]*entity.ProductAttribute, error) {
	return s.repo.FindByType(ctx, attrType)
}
