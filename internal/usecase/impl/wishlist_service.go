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

type wishlistService struct {
	crud[entity.Wishlist]
	txManager repository.TransactionManager
	repo      repository.WishlistRepository
	items     crud[entity.WishListItem]
	events    eventEmitter
	logger    *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	WishlistRepo repository.WishlistRepository
	ItemRepo     repository.WishListItemRepository
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		crud:      newCrud[entity.Wishlist](params.WishlistRepo, "wishlist"),
		txManager: params.TxManager,
		repo:      params.WishlistRepo,
		items:     newCrud[entity.WishListItem](params.ItemRepo, "wishlist item"),
		events:    eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (s *wishlistService) Create(ctx context.Context, params entity.WishlistParams) (*entity.Wishlist, error) {
	wishlist, err := entity.NewWishlist(params, now())
	if err != nil {
		return nil, err
	}

	return s.save(ctx, wishlist)
}

func (s *wishlistService) Get(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := s.repo.FindByIDWithItems(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.NewNotFoundError("wishlist", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist")
	}

	return wishlist, nil
}

func (s *wishlistService) Update(ctx context.Context, id uuid.UUID, patch entity.WishlistPatch) (*entity.Wishlist, error) {
	return s.updateWithItems(ctx, id, func(w entity.Wishlist, at time.Time) (entity.Wishlist, error) {
		next := w.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *wishlistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := wishlistCascade(id).run(ctx, s.txManager); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Wishlist deleted", slog.Any("wishlistID", id))
	s.events.emit(ctx, service.EventWishlistDeleted, id, nil)

	return nil
}

func (s *wishlistService) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	return s.updateWithItems(ctx, id, func(w entity.Wishlist, at time.Time) (entity.Wishlist, error) {
		return w.MarkDeleted(at), nil
	})
}

// updateWithItems is crud.update over a wishlist read with its items, so the
// returned value carries them like Get does.
func (s *wishlistService) updateWithItems(ctx context.Context, id uuid.UUID, next func(current entity.Wishlist, now time.Time) (entity.Wishlist, error)) (*entity.Wishlist, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := next(*current, now())
	if err != nil {
		return nil, err
	}

	return s.save(ctx, &updated)
}

func (s *wishlistService) List(ctx context.Context) ([]*entity.Wishlist, error) {
	return s.list(ctx)
}

func (s *wishlistService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *wishlistService) AddItem(ctx context.Context, wishlistID uuid.UUID, params entity.WishListItemParams) (*entity.WishListItem, error) {
	params.WishlistID = wishlistID
	item, err := entity.NewWishListItem(params, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repo, "wishlist", wishlistID); err != nil {
		return nil, err
	}

	return s.items.save(ctx, item)
}

func (s *wishlistService) UpdateItem(ctx context.Context, itemID uuid.UUID, patch entity.WishListItemPatch) (*entity.WishListItem, error) {
	return s.items.update(ctx, itemID, func(i entity.WishListItem, at time.Time) (entity.WishListItem, error) {
		next := i.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *wishlistService) RemoveItem(ctx context.Context, wishlistID, itemID uuid.UUID) error {
	item, err := s.items.get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.WishlistID != wishlistID {
		return domainerrors.NewNotFoundError("wishlist item", itemID)
	}

	return s.items.remove(ctx, itemID)
}
