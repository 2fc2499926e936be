package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	crudRepository[entity.Wishlist, model.WishlistModel]
}

// NewWishlistRepository creates a wishlist store on db.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{crudRepository[entity.Wishlist, model.WishlistModel]{
		db:         db,
		name:       "wishlist",
		toEntity:   toWishlistEntity,
		toModel:    fromWishlistEntity,
		softDelete: true,
	}}
}

// Save inserts a new wishlist together with its items. For an existing
// wishlist only the header row is written.
func (r *wishlistRepository) Save(ctx context.Context, w *entity.Wishlist) (*entity.Wishlist, error) {
	if w.ID != uuid.Nil {
		saved, err := r.crudRepository.Save(ctx, w)
		if err != nil {
			return nil, err
		}
		saved.Items = w.Items

		return saved, nil
	}

	m := fromWishlistEntity(w)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, r.translate(err, "create")
	}

	return toWishlistEntity(m), nil
}

func (r *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	return r.find(ctx, "find by user", r.active, whereColumn("user_id", userID))
}

func (r *wishlistRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	var m model.WishlistModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, r.translate(err, "find with items")
	}

	return toWishlistEntity(&m), nil
}

func toWishlistEntity(m *model.WishlistModel) *entity.Wishlist {
	w := &entity.Wishlist{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
	if len(m.Items) > 0 {
		w.Items = make([]entity.WishListItem, 0, len(m.Items))
		for i := range m.Items {
			w.Items = append(w.Items, *toWishListItemEntity(&m.Items[i]))
		}
	}

	return w
}

func fromWishlistEntity(w *entity.Wishlist) *model.WishlistModel {
	m := &model.WishlistModel{
		ID:        w.ID,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		DeletedAt: w.DeletedAt,
	}
	for i := range w.Items {
		m.Items = append(m.Items, *fromWishListItemEntity(&w.Items[i]))
	}

	return m
}

type wishListItemRepository struct {
	crudRepository[entity.WishListItem, model.WishListItemModel]
}

// NewWishListItemRepository creates a wishlist item store on db.
func NewWishListItemRepository(db *gorm.DB) repository.WishListItemRepository {
	return &wishListItemRepository{crudRepository[entity.WishListItem, model.WishListItemModel]{
		db:       db,
		name:     "wishlist item",
		toEntity: toWishListItemEntity,
		toModel:  fromWishListItemEntity,
	}}
}

func (r *wishListItemRepository) FindByWishlistID(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishListItem, error) {
	return r.find(ctx, "find by wishlist", whereColumn("wishlist_id", wishlistID))
}

func (r *wishListItemRepository) DeleteByWishlistID(ctx context.Context, wishlistID uuid.UUID) (int64, error) {
	return r.deleteWhere(ctx, "delete by wishlist", "wishlist_id = ?", wishlistID)
}

func toWishListItemEntity(m *model.WishListItemModel) *entity.WishListItem {
	return &entity.WishListItem{
		ID:         m.ID,
		WishlistID: m.WishlistID,
		ProductID:  m.ProductID,
		DateAdded:  m.DateAdded,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromWishListItemEntity(i *entity.WishListItem) *model.WishListItemModel {
	return &model.WishListItemModel{
		ID:         i.ID,
		WishlistID: i.WishlistID,
		ProductID:  i.ProductID,
		DateAdded:  i.DateAdded,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
