package impl

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// cascadeStep is one named deletion of a teardown.
type cascadeStep struct {
	name string
	run  func(ctx context.Context, repos repository.RepositoryFactory) error
}

// cascade removes an aggregate's dependents and then its root inside one
// transaction. exists reports whether the root row is present.
type cascade struct {
	entity string
	id     uuid.UUID
	exists func(ctx context.Context, repos repository.RepositoryFactory) (bool, error)
	steps  []cascadeStep
}

// run executes the steps in order. An absent root is NotFound; a failed step,
// or a root that survives the steps, is an IntegrityViolation naming the step.
// Either way nothing is committed.
func (c cascade) run(ctx context.Context, txManager repository.TransactionManager) error {
	return txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		present, err := c.exists(ctx, repos)
		if err != nil {
			return errors.Wrapf(err, "failed to check %s", c.entity)
		}
		if !present {
			return domainerrors.NewNotFoundError(c.entity, c.id)
		}

		for _, step := range c.steps {
			if err := step.run(ctx, repos); err != nil {
				return domainerrors.NewIntegrityViolation(c.entity, step.name, err)
			}
		}

		present, err = c.exists(ctx, repos)
		if err != nil {
			return domainerrors.NewIntegrityViolation(c.entity, "verify deletion", err)
		}
		if present {
			return domainerrors.NewIntegrityViolation(c.entity, "verify deletion", nil)
		}

		return nil
	})
}

// deleteRows adapts a bulk delete to a step; any row count is accepted.
func deleteRows(del func(ctx context.Context, repos repository.RepositoryFactory) (int64, error)) func(context.Context, repository.RepositoryFactory) error {
	return func(ctx context.Context, repos repository.RepositoryFactory) error {
		_, err := del(ctx, repos)

		return err
	}
}

func orderCascade(id uuid.UUID) cascade {
	return cascade{
		entity: "order",
		id:     id,
		exists: func(ctx context.Context, repos repository.RepositoryFactory) (bool, error) {
			return repos.NewOrderDetailsRepository().ExistsByID(ctx, id)
		},
		steps: []cascadeStep{
			{name: "delete order items by order", run: deleteRows(func(ctx context.Context, repos repository.RepositoryFactory) (int64, error) {
				return repos.NewOrderItemRepository().DeleteByOrderID(ctx, id)
			})},
			{name: "delete payment by order", run: deleteRows(func(ctx context.Context, repos repository.RepositoryFactory) (int64, error) {
				return repos.NewPaymentDetailsRepository().DeleteByOrderID(ctx, id)
			})},
			{name: "delete order", run: func(ctx context.Context, repos repository.RepositoryFactory) error {
				return repos.NewOrderDetailsRepository().DeleteByID(ctx, id)
			}},
		},
	}
}

func wishlistCascade(id uuid.UUID) cascade {
	return cascade{
		entity: "wishlist",
		id:     id,
		exists: func(ctx context.Context, repos repository.RepositoryFactory) (bool, error) {
			return repos.NewWishlistRepository().ExistsByID(ctx, id)
		},
		steps: []cascadeStep{
			{name: "delete wishlist items by wishlist", run: deleteRows(func(ctx context.Context, repos repository.RepositoryFactory) (int64, error) {
				return repos.NewWishListItemRepository().DeleteByWishlistID(ctx, id)
			})},
			{name: "delete wishlist", run: func(ctx context.Context, repos repository.RepositoryFactory) error {
				return repos.NewWishlistRepository().DeleteByID(ctx, id)
			}},
		},
	}
}

func cartCascade(id uuid.UUID) cascade {
	return cascade{
		entity: "cart",
		id:     id,
		exists: func(ctx context.Context, repos repository.RepositoryFactory) (bool, error) {
			return repos.NewCartRepository().ExistsByID(ctx, id)
		},
		steps: []cascadeStep{
			{name: "delete cart items by cart", run: deleteRows(func(ctx context.Context, repos repository.RepositoryFactory) (int64, error) {
				return repos.NewCartItemRepository().DeleteByCartID(ctx, id)
			})},
			{name: "delete cart", run: func(ctx context.Context, repos repository.RepositoryFactory) error {
				return repos.NewCartRepository().DeleteByID(ctx, id)
			}},
		},
	}
}
