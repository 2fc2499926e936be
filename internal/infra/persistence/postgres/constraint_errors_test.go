package postgres

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		cause error
	}{
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, cause: domainerrors.ErrInvalidReference},
		{name: "sqlite foreign key", err: errors.New("FOREIGN KEY constraint failed"), cause: domainerrors.ErrInvalidReference},
		{
			name:  "postgres foreign key",
			err:   errors.New(`ERROR: update or delete on table "categories" violates foreign key constraint "fk_sub_categories_category" (SQLSTATE 23503)`),
			cause: domainerrors.ErrInvalidReference,
		},
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, cause: domainerrors.ErrSkuAlreadyExists},
		{name: "sqlite duplicate", err: errors.New("UNIQUE constraint failed: product_skus.sku"), cause: domainerrors.ErrSkuAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.err, "product sku", "save", domainerrors.ErrSkuAlreadyExists)

			assert.True(t, errors.Is(err, domainerrors.ErrIntegrityViolation))
			assert.True(t, errors.Is(err, tt.cause))
		})
	}

	t.Run("not null stays a validation failure", func(t *testing.T) {
		err := translateError(errors.New("NOT NULL constraint failed: categories.name"), "category", "save", nil)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("anything else is a database failure", func(t *testing.T) {
		err := translateError(errors.New("connection reset by peer"), "category", "save", nil)

		assert.False(t, errors.Is(err, domainerrors.ErrIntegrityViolation))
		assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestCategoryRepository_DeleteReferencedCategory(t *testing.T) {
	db := sqlitetest.Open(t)
	f := seedCatalog(t, db)

	err := NewCategoryRepository(db).DeleteByID(context.Background(), f.subCategory.CategoryID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrityViolation))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestProductAttributeRepository_DeleteReferencedAttribute(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	f := seedCatalog(t, db)
	_, err := NewProductSkuRepository(db).Save(ctx, f.sku(t, "ACME-XL-RED"))
	require.NoError(t, err)

	err = NewProductAttributeRepository(db).DeleteByID(ctx, f.size.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))

	still, err := NewProductAttributeRepository(db).FindByID(ctx, f.size.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AttributeSize, still.Type)
}
