package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productSkuService struct {
	crud[entity.ProductSku]
	repo          repository.ProductSkuRepository
	productRepo   repository.ProductRepository
	attributeRepo repository.ProductAttributeRepository
	cache         service.SkuCache
	labels        service.LabelService
	logger        *slog.Logger
}

// ProductSkuServiceParams holds dependencies for ProductSkuService, injected by Fx.
type ProductSkuServiceParams struct {
	fx.In

	SkuRepo       repository.ProductSkuRepository
	ProductRepo   repository.ProductRepository
	AttributeRepo repository.ProductAttributeRepository
	Cache         service.SkuCache     `optional:"true"`
	Labels        service.LabelService `optional:"true"`
	Logger        *slog.Logger
}

// NewProductSkuService is the constructor for productSkuService.
func NewProductSkuService(params ProductSkuServiceParams) usecase.ProductSkuUsecase {
	return &productSkuService{
		crud:          newCrud[entity.ProductSku](params.SkuRepo, "product SKU"),
		repo:          params.SkuRepo,
		productRepo:   params.ProductRepo,
		attributeRepo: params.AttributeRepo,
		cache:         params.Cache,
		labels:        params.Labels,
		logger:        params.Logger,
	}
}

func (s *productSkuService) Create(ctx context.Context, input usecase.CreateSkuInput) (*entity.ProductSku, error) {
	size, err := s.resolve(ctx, input.SizeAttributeID)
	if err != nil {
		return nil, err
	}
	color, err := s.resolve(ctx, input.ColorAttributeID)
	if err != nil {
		return nil, err
	}
	brand, err := s.resolve(ctx, input.BrandAttributeID)
	if err != nil {
		return nil, err
	}

	sku, err := entity.NewProductSku(entity.ProductSkuParams{
		ProductID: input.ProductID,
		Size:      size,
		Color:     color,
		Brand:     brand,
		Sku:       input.Sku,
		Price:     input.Price,
		Quantity:  input.Quantity,
	}, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.productRepo, "product", sku.ProductID); err != nil {
		return nil, err
	}

	return s.save(ctx, sku)
}

func (s *productSkuService) Get(ctx context.Context, id uuid.UUID) (*entity.ProductSku, error) {
	if s.cache == nil {
		return s.get(ctx, id)
	}

	return s.cache.GetOrLoad(ctx, id, func(ctx context.Context) (*entity.ProductSku, error) {
		return s.get(ctx, id)
	})
}

func (s *productSkuService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateSkuInput) (*entity.ProductSku, error) {
	patch := entity.ProductSkuPatch{
		ProductID: input.ProductID,
		Sku:       input.Sku,
		Price:     input.Price,
		Quantity:  input.Quantity,
	}

	var err error
	if patch.Size, err = s.resolvePatch(ctx, input.SizeAttributeID); err != nil {
		return nil, err
	}
	if patch.Color, err = s.resolvePatch(ctx, input.ColorAttributeID); err != nil {
		return nil, err
	}
	if patch.Brand, err = s.resolvePatch(ctx, input.BrandAttributeID); err != nil {
		return nil, err
	}
	if patch.ProductID != nil {
		if err := mustExist(ctx, s.productRepo, "product", *patch.ProductID); err != nil {
			return nil, err
		}
	}

	updated, err := s.update(ctx, id, func(sku entity.ProductSku, at time.Time) (entity.ProductSku, error) {
		next := sku.Apply(patch, at)

		return next, next.Validate()
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	return updated, nil
}

func (s *productSkuService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.remove(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	return nil
}

func (s *productSkuService) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.ProductSku, error) {
	deleted, err := s.update(ctx, id, func(sku entity.ProductSku, at time.Time) (entity.ProductSku, error) {
		return sku.MarkDeleted(at), nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	return deleted, nil
}

func (s *productSkuService) List(ctx context.Context) ([]*entity.ProductSku, error) {
	return s.list(ctx)
}

func (s *productSkuService) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductSku, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *productSkuService) FindBySku(ctx context.Context, code string) (*entity.ProductSku, error) {
	sku, err := s.repo.FindBySku(ctx, code)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.NewNotFoundErrorByKey("product SKU", code)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product SKU by code")
	}

	return sku, nil
}

func (s *productSkuService) Label(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if s.labels == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("label rendering is not configured")
	}

	sku, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.labels.GenerateSkuLabel(sku)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render SKU label")
	}

	return png, nil
}

// FindByLabel resolves a scanned label payload to its SKU.
func (s *productSkuService) FindByLabel(ctx context.Context, payload string) (*entity.ProductSku, error) {
	if s.labels == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("label rendering is not configured")
	}

	id, err := s.labels.ParseSkuLabel(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("label")
	}

	return s.Get(ctx, id)
}

// resolve loads the attribute behind id. A nil id yields an empty reference
// so validation reports the missing field.
func (s *productSkuService) resolve(ctx context.Context, id uuid.UUID) (entity.AttributeRef, error) {
	if id == uuid.Nil {
		return entity.AttributeRef{}, nil
	}

	attr, err := s.attributeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return entity.AttributeRef{}, domainerrors.NewNotFoundError("product attribute", id)
	}
	if err != nil {
		return entity.AttributeRef{}, errors.Wrap(err, "failed to find product attribute")
	}

	return attr.Ref(), nil
}

func (s *productSkuService) resolvePatch(ctx context.Context, id *uuid.UUID) (*entity.AttributeRef, error) {
	if id == nil {
		return nil, nil
	}

	ref, err := s.resolve(ctx, *id)
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

func (s *productSkuService) invalidate(ctx context.Context, id uuid.UUID) {
	invalidateSku(ctx, s.cache, s.logger, id)
}

// invalidateSku evicts one cached SKU. A failed eviction is logged; the entry
// expires with its TTL.
func invalidateSku(ctx context.Context, cache service.SkuCache, logger *slog.Logger, id uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, id); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to invalidate cached SKU",
			slog.Any("skuID", id),
			slog.Any("error", err),
		)
	}
}
