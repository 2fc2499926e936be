// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// now is the clock every factory and Apply call receives.
var now = func() time.Time { return time.Now().UTC() }

// crud holds the read/update/delete steps every service shares. entity names
// the aggregate in NotFound errors and wrap messages.
type crud[T any] struct {
	repo   repository.CrudRepository[T]
	entity string
}

func newCrud[T any](repo repository.CrudRepository[T], entity string) crud[T] {
	return crud[T]{repo: repo, entity: entity}
}

func (c crud[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	found, err := c.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.NewNotFoundError(c.entity, id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s", c.entity)
	}

	return found, nil
}

// update loads the current value, derives the next one and saves it under the
// same id. next must return the validation error of the derived value.
func (c crud[T]) update(ctx context.Context, id uuid.UUID, next func(current T, now time.Time) (T, error)) (*T, error) {
	current, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := next(*current, now())
	if err != nil {
		return nil, err
	}

	return c.save(ctx, &updated)
}

func (c crud[T]) save(ctx context.Context, value *T) (*T, error) {
	saved, err := c.repo.Save(ctx, value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", c.entity)
	}

	return saved, nil
}

func (c crud[T]) remove(ctx context.Context, id uuid.UUID) error {
	err := c.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domainerrors.NewNotFoundError(c.entity, id)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s", c.entity)
	}

	return nil
}

func (c crud[T]) list(ctx context.Context) ([]*T, error) {
	all, err := c.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", c.entity)
	}

	return all, nil
}

// mustExist returns NotFound for the named entity when id is absent.
func mustExist[T any](ctx context.Context, repo repository.CrudRepository[T], entity string, id uuid.UUID) error {
	exists, err := repo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "failed to check %s", entity)
	}
	if !exists {
		return domainerrors.NewNotFoundError(entity, id)
	}

	return nil
}
