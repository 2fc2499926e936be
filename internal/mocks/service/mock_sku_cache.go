package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSkuCache is a mock of service.SkuCache.
type MockSkuCache struct {
	mock.Mock
}

// NewMockSkuCache creates a mock whose expectations are asserted on cleanup.
func NewMockSkuCache(t testingT) *MockSkuCache {
	m := &MockSkuCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GetOrLoad returns the configured SKU, or calls load when the expectation
// returns nil for both values.
func (m *MockSkuCache) GetOrLoad(ctx context.Context, id uuid.UUID, load func(ctx context.Context) (*entity.ProductSku, error)) (*entity.ProductSku, error) {
	ret := m.Called(ctx, id, load)
	sku, _ := ret.Get(0).(*entity.ProductSku)
	if sku == nil && ret.Error(1) == nil {
		return load(ctx)
	}

	return sku, ret.Error(1)
}

func (m *MockSkuCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSkuCache) EXPECT() *MockSkuCache_Expecter {
	return &MockSkuCache_Expecter{mock: &m.Mock}
}

type MockSkuCache_Expecter struct {
	mock *mock.Mock
}

func (e *MockSkuCache_Expecter) GetOrLoad(ctx, id, load any) *mock.Call {
	return e.mock.On("GetOrLoad", ctx, id, load)
}

func (e *MockSkuCache_Expecter) Invalidate(ctx, id any) *mock.Call {
	return e.mock.On("Invalidate", ctx, id)
}
