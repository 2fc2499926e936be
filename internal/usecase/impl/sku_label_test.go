package impl

import (
	"context"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLabelledSkuService(s services) usecase.ProductSkuUsecase {
	return NewProductSkuService(ProductSkuServiceParams{
		SkuRepo:       postgres.NewProductSkuRepository(s.db),
		ProductRepo:   postgres.NewProductRepository(s.db),
		AttributeRepo: postgres.NewProductAttributeRepository(s.db),
		Labels:        qrcode.NewLabelService(&config.Config{}),
		Logger:        newDiscardLogger(),
	})
}

func TestProductSkuService_LabelIsPNG(t *testing.T) {
	s := newServices(t)
	c := s.seedCatalog(t)
	ctx := context.Background()
	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 120))
	require.NoError(t, err)

	png, err := newLabelledSkuService(s).Label(ctx, sku.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestProductSkuService_FindByLabel(t *testing.T) {
	s := newServices(t)
	c := s.seedCatalog(t)
	ctx := context.Background()
	sku, err := s.skus.Create(ctx, c.skuInput("EASEL-XL-RED", 120))
	require.NoError(t, err)
	svc := newLabelledSkuService(s)

	t.Run("scanned payload resolves the sku", func(t *testing.T) {
		got, err := svc.FindByLabel(ctx, `{"type":"sku","sku_id":"`+sku.ID.String()+`","sku":"EASEL-XL-RED"}`)

		require.NoError(t, err)
		assert.Equal(t, sku.ID, got.ID)
	})

	t.Run("unknown sku is not found", func(t *testing.T) {
		_, err := svc.FindByLabel(ctx, `{"type":"sku","sku_id":"`+uuid.NewString()+`"}`)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("foreign payload is invalid input", func(t *testing.T) {
		_, err := svc.FindByLabel(ctx, `{"type":"subscription","sku_id":"`+sku.ID.String()+`"}`)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
	})
}

func TestProductSkuService_LabelWithoutRenderer(t *testing.T) {
	s := newServices(t)

	_, err := s.skus.Label(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
