package redis

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSku() *entity.ProductSku {
	return &entity.ProductSku{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Sku:       "MUG-BLUE",
		Price:     decimal.RequireFromString("12.50"),
		Quantity:  3,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func countingLoader(sku *entity.ProductSku, err error) (func(context.Context) (*entity.ProductSku, error), *int) {
	calls := 0

	return func(context.Context) (*entity.ProductSku, error) {
		calls++

		return sku, err
	}, &calls
}

func TestSkuCache_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := newSkuCache(db, time.Minute, discardLogger())
	sku := testSku()
	data, err := json.Marshal(sku)
	require.NoError(t, err)
	mock.ExpectGet(cacheKey(sku.ID)).SetVal(string(data))
	load, calls := countingLoader(nil, errors.New("must not load"))

	got, err := cache.GetOrLoad(context.Background(), sku.ID, load)

	require.NoError(t, err)
	assert.Equal(t, 0, *calls)
	assert.Equal(t, sku.Sku, got.Sku)
	assert.True(t, sku.Price.Equal(got.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkuCache_MissLoadsAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := newSkuCache(db, time.Minute, discardLogger())
	sku := testSku()
	data, err := json.Marshal(sku)
	require.NoError(t, err)
	mock.ExpectGet(cacheKey(sku.ID)).RedisNil()
	mock.ExpectSet(cacheKey(sku.ID), data, time.Minute).SetVal("OK")
	load, calls := countingLoader(sku, nil)

	got, err := cache.GetOrLoad(context.Background(), sku.ID, load)

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, sku.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkuCache_RedisDownFallsBackToLoad(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := newSkuCache(db, time.Minute, discardLogger())
	sku := testSku()
	data, err := json.Marshal(sku)
	require.NoError(t, err)
	mock.ExpectGet(cacheKey(sku.ID)).SetErr(errors.New("connection refused"))
	mock.ExpectSet(cacheKey(sku.ID), data, time.Minute).SetErr(errors.New("connection refused"))
	load, calls := countingLoader(sku, nil)

	got, err := cache.GetOrLoad(context.Background(), sku.ID, load)

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, sku.ID, got.ID)
}

func TestSkuCache_LoadErrorIsNotCached(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := newSkuCache(db, time.Minute, discardLogger())
	id := uuid.New()
	mock.ExpectGet(cacheKey(id)).RedisNil()
	load, _ := countingLoader(nil, domainerrors.NewNotFoundError("product sku", id))

	got, err := cache.GetOrLoad(context.Background(), id, load)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkuCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := newSkuCache(db, 0, discardLogger())
	id := uuid.New()
	mock.ExpectDel(cacheKey(id)).SetVal(1)

	require.NoError(t, cache.Invalidate(context.Background(), id))
	assert.Equal(t, defaultTTL, cache.ttl)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectDel(cacheKey(id)).SetErr(errors.New("timeout"))
	assert.ErrorContains(t, cache.Invalidate(context.Background(), id), "timeout")
}

func TestNewSkuCache_DisabledPassesThrough(t *testing.T) {
	cache := NewSkuCache(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	sku := testSku()
	load, calls := countingLoader(sku, nil)

	got, err := cache.GetOrLoad(context.Background(), sku.ID, load)

	require.NoError(t, err)
	assert.Same(t, sku, got)
	assert.Equal(t, 1, *calls)
	assert.NoError(t, cache.Invalidate(context.Background(), sku.ID))
}
