package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock of repository.CartRepository.
type MockCartRepository struct {
	crudMock[entity.Cart]
}

// NewMockCartRepository creates a mock whose expectations are asserted on cleanup.
func NewMockCartRepository(t testingT) *MockCartRepository {
	m := &MockCartRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error) {
	ret := m.MethodCalled("FindByUserID", ctx, userID)

	return sliceOrNil[entity.Cart](ret, 0), ret.Error(1)
}

func (m *MockCartRepository) EXPECT() *MockCartRepository_Expecter {
	return &MockCartRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockCartRepository_Expecter struct {
	crudExpecter
}

func (e *MockCartRepository_Expecter) FindByUserID(ctx, userID any) *mock.Call {
	return e.mock.On("FindByUserID", ctx, userID)
}

// MockCartItemRepository is a mock of repository.CartItemRepository.
type MockCartItemRepository struct {
	crudMock[entity.CartItem]
}

// NewMockCartItemRepository creates a mock whose expectations are asserted on cleanup.
func NewMockCartItemRepository(t testingT) *MockCartItemRepository {
	m := &MockCartItemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartItemRepository) FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	ret := m.MethodCalled("FindByCartID", ctx, cartID)

	return sliceOrNil[entity.CartItem](ret, 0), ret.Error(1)
}

func (m *MockCartItemRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.CartItem, error) {
	ret := m.MethodCalled("FindByProductID", ctx, productID)

	return sliceOrNil[entity.CartItem](ret, 0), ret.Error(1)
}

func (m *MockCartItemRepository) FindByProductSkuID(ctx context.Context, productSkuID uuid.UUID) ([]*entity.CartItem, error) {
	ret := m.MethodCalled("FindByProductSkuID", ctx, productSkuID)

	return sliceOrNil[entity.CartItem](ret, 0), ret.Error(1)
}

func (m *MockCartItemRepository) FindByQuantity(ctx context.Context, quantity int) ([]*entity.CartItem, error) {
	ret := m.MethodCalled("FindByQuantity", ctx, quantity)

	return sliceOrNil[entity.CartItem](ret, 0), ret.Error(1)
}

func (m *MockCartItemRepository) DeleteByCartID(ctx context.Context, cartID uuid.UUID) (int64, error) {
	ret := m.MethodCalled("DeleteByCartID", ctx, cartID)

	return countOf(ret, 0), ret.Error(1)
}

func (m *MockCartItemRepository) EXPECT() *MockCartItemRepository_Expecter {
	return &MockCartItemRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockCartItemRepository_Expecter struct {
	crudExpecter
}

func (e *MockCartItemRepository_Expecter) FindByCartID(ctx, cartID any) *mock.Call {
	return e.mock.On("FindByCartID", ctx, cartID)
}

func (e *MockCartItemRepository_Expecter) FindByProductID(ctx, productID any) *mock.Call {
	return e.mock.On("FindByProductID", ctx, productID)
}

func (e *MockCartItemRepository_Expecter) FindByProductSkuID(ctx, productSkuID any) *mock.Call {
	return e.mock.On("FindByProductSkuID", ctx, productSkuID)
}

func (e *MockCartItemRepository_Expecter) FindByQuantity(ctx, quantity any) *mock.Call {
	return e.mock.On("FindByQuantity", ctx, quantity)
}

func (e *MockCartItemRepository_Expecter) DeleteByCartID(ctx, cartID any) *mock.Call {
	return e.mock.On("DeleteByCartID", ctx, cartID)
}
