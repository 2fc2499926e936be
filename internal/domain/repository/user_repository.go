package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// UserRepository persists storefront accounts.
type UserRepository interface {
	CrudRepository[entity.User]

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
