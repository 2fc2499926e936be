package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository implements repository.CrudRepository for an entity E stored
// as model M. Entity repositories embed it and add their finders.
type crudRepository[E any, M any] struct {
	db   *gorm.DB
	name string // entity name used in error messages

	toEntity func(*M) *E
	toModel  func(*E) *M

	softDelete bool     // filter deleted_at IS NULL in FindAll
	preloads   []string // associations loaded on every read
	duplicate  error    // cause reported for unique violations
}

func (r *crudRepository[E, M]) Save(ctx context.Context, e *E) (*E, error) {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return nil, r.translate(err, "save")
	}

	return r.toEntity(m), nil
}

func (r *crudRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	return r.first(ctx, "find by id", func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

func (r *crudRepository[E, M]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.translate(err, "exists by id")
	}

	return count > 0, nil
}

func (r *crudRepository[E, M]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return r.translate(result.Error, "delete by id")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (r *crudRepository[E, M]) FindAll(ctx context.Context) ([]*E, error) {
	return r.find(ctx, "find all", r.active)
}

// deleteWhere hard-deletes every row matching the condition.
func (r *crudRepository[E, M]) deleteWhere(ctx context.Context, action, query string, args ...any) (int64, error) {
	result := r.db.WithContext(ctx).Where(query, args...).Delete(new(M))
	if result.Error != nil {
		return 0, r.translate(result.Error, action)
	}

	return result.RowsAffected, nil
}

// active excludes soft-deleted rows for stores that carry the marker.
func (r *crudRepository[E, M]) active(db *gorm.DB) *gorm.DB {
	if !r.softDelete {
		return db
	}

	return db.Where("deleted_at IS NULL")
}

func (r *crudRepository[E, M]) query(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	for _, assoc := range r.preloads {
		db = db.Preload(assoc)
	}

	return db
}

func (r *crudRepository[E, M]) find(ctx context.Context, action string, scopes ...func(*gorm.DB) *gorm.DB) ([]*E, error) {
	var models []*M
	err := r.query(ctx).
		Scopes(scopes...).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.translate(err, action)
	}

	return r.toEntities(models), nil
}

func (r *crudRepository[E, M]) first(ctx context.Context, action string, scopes ...func(*gorm.DB) *gorm.DB) (*E, error) {
	var m M
	if err := r.query(ctx).Scopes(scopes...).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, r.translate(err, action)
	}

	return r.toEntity(&m), nil
}

func (r *crudRepository[E, M]) toEntities(models []*M) []*E {
	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.toEntity(m))
	}

	return entities
}

func (r *crudRepository[E, M]) translate(err error, action string) error {
	return translateError(err, r.name, action, r.duplicate)
}
