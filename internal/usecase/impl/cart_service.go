package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	crud[entity.Cart]
	txManager repository.TransactionManager
	repo      repository.CartRepository
	items     crud[entity.CartItem]
	itemRepo  repository.CartItemRepository
	skuRepo   repository.ProductSkuRepository
	events    eventEmitter
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	ItemRepo  repository.CartItemRepository
	SkuRepo   repository.ProductSkuRepository
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		crud:      newCrud[entity.Cart](params.CartRepo, "cart"),
		txManager: params.TxManager,
		repo:      params.CartRepo,
		items:     newCrud[entity.CartItem](params.ItemRepo, "cart item"),
		itemRepo:  params.ItemRepo,
		skuRepo:   params.SkuRepo,
		events:    eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (s *cartService) Create(ctx context.Context, params entity.CartParams) (*entity.Cart, error) {
	cart, err := entity.NewCart(params, now())
	if err != nil {
		return nil, err
	}

	return s.save(ctx, cart)
}

func (s *cartService) Get(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	return s.get(ctx, id)
}

func (s *cartService) Update(ctx context.Context, id uuid.UUID, patch entity.CartPatch) (*entity.Cart, error) {
	return s.update(ctx, id, func(c entity.Cart, at time.Time) (entity.Cart, error) {
		next := c.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *cartService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := cartCascade(id).run(ctx, s.txManager); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Cart deleted", slog.Any("cartID", id))
	s.events.emit(ctx, service.EventCartDeleted, id, nil)

	return nil
}

func (s *cartService) List(ctx context.Context) ([]*entity.Cart, error) {
	return s.list(ctx)
}

func (s *cartService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, input usecase.CartLineInput) (*entity.CartItem, error) {
	item, err := entity.NewCartItem(entity.CartItemParams{
		CartID:       cartID,
		ProductID:    input.ProductID,
		ProductSkuID: input.ProductSkuID,
		Quantity:     input.Quantity,
	}, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repo, "cart", cartID); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.skuRepo, "product SKU", item.ProductSkuID); err != nil {
		return nil, err
	}

	return s.items.save(ctx, item)
}

func (s *cartService) Items(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	if err := mustExist(ctx, s.repo, "cart", cartID); err != nil {
		return nil, err
	}

	return s.itemRepo.FindByCartID(ctx, cartID)
}

type cartItemService struct {
	crud[entity.CartItem]
	repo repository.CartItemRepository
}

// NewCartItemService is the constructor for cartItemService.
func NewCartItemService(repo repository.CartItemRepository) usecase.CartItemUsecase {
	return &cartItemService{
		crud: newCrud[entity.CartItem](repo, "cart item"),
		repo: repo,
	}
}

func (s *cartItemService) Get(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	return s.get(ctx, id)
}

// Update keeps every field the patch leaves nil, so a quantity change never
// drops the product or SKU reference.
func (s *cartItemService) Update(ctx context.Context, id uuid.UUID, patch entity.CartItemPatch) (*entity.CartItem, error) {
	return s.update(ctx, id, func(i entity.CartItem, at time.Time) (entity.CartItem, error) {
		next := i.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *cartItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *cartItemService) List(ctx context.Context) ([]*entity.CartItem, error) {
	return s.list(ctx)
}

func (s *cartItemService) FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	return s.repo.FindByCartID(ctx, cartID)
}

func (s *cartItemService) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.CartItem, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *cartItemService) FindByProductSkuID(ctx context.Context, productSkuID uuid.UUID) ([]*entity.CartItem, error) {
	return s.repo.FindByProductSkuID(ctx, productSkuID)
}

func (s *cartItemService) FindByQuantity(ctx context.Context, quantity int) ([]*entity.CartItem, error) {
	return s.repo.FindByQuantity(ctx, quantity)
}
