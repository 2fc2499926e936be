// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by finders and deletes that target a missing row.
var ErrRecordNotFound = errors.New("record not found")

// CrudRepository is the shape every entity store shares.
type CrudRepository[T any] interface {
	// Save inserts the entity when its ID is uuid.Nil, assigning a new ID,
	// and otherwise replaces the stored row with the same ID.
	Save(ctx context.Context, entity *T) (*T, error)

	// FindByID returns ErrRecordNotFound when no row has the ID.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	// ExistsByID reports whether a row with the ID is present, soft-deleted or not.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByID hard-deletes the row; ErrRecordNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// FindAll lists rows ordered by creation time. Stores with a soft-delete
	// marker exclude marked rows.
	FindAll(ctx context.Context) ([]*T, error)
}
