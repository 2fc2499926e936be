package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWishlistRepository is a mock of repository.WishlistRepository.
type MockWishlistRepository struct {
	crudMock[entity.Wishlist]
}

// NewMockWishlistRepository creates a mock whose expectations are asserted on cleanup.
func NewMockWishlistRepository(t testingT) *MockWishlistRepository {
	m := &MockWishlistRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	ret := m.MethodCalled("FindByUserID", ctx, userID)

	return sliceOrNil[entity.Wishlist](ret, 0), ret.Error(1)
}

func (m *MockWishlistRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	ret := m.MethodCalled("FindByIDWithItems", ctx, id)

	return objectOrNil[entity.Wishlist](ret, 0), ret.Error(1)
}

func (m *MockWishlistRepository) EXPECT() *MockWishlistRepository_Expecter {
	return &MockWishlistRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockWishlistRepository_Expecter struct {
	crudExpecter
}

func (e *MockWishlistRepository_Expecter) FindByUserID(ctx, userID any) *mock.Call {
	return e.mock.On("FindByUserID", ctx, userID)
}

func (e *MockWishlistRepository_Expecter) FindByIDWithItems(ctx, id any) *mock.Call {
	return e.mock.On("FindByIDWithItems", ctx, id)
}

// MockWishListItemRepository is a mock of repository.WishListItemRepository.
type MockWishListItemRepository struct {
	crudMock[entity.WishListItem]
}

// NewMockWishListItemRepository creates a mock whose expectations are asserted on cleanup.
func NewMockWishListItemRepository(t testingT) *MockWishListItemRepository {
	m := &MockWishListItemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishListItemRepository) FindByWishlistID(ctx context.Context, wishlistID uuid.UUID) ([]*entity.WishListItem, error) {
	ret := m.MethodCalled("FindByWishlistID", ctx, wishlistID)

	return sliceOrNil[entity.WishListItem](ret, 0), ret.Error(1)
}

func (m *MockWishListItemRepository) DeleteByWishlistID(ctx context.Context, wishlistID uuid.UUID) (int64, error) {
	ret := m.MethodCalled("DeleteByWishlistID", ctx, wishlistID)

	return countOf(ret, 0), ret.Error(1)
}

func (m *MockWishListItemRepository) EXPECT() *MockWishListItemRepository_Expecter {
	return &MockWishListItemRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockWishListItemRepository_Expecter struct {
	crudExpecter
}

func (e *MockWishListItemRepository_Expecter) FindByWishlistID(ctx, wishlistID any) *mock.Call {
	return e.mock.On("FindByWishlistID", ctx, wishlistID)
}

func (e *MockWishListItemRepository_Expecter) DeleteByWishlistID(ctx, wishlistID any) *mock.Call {
	return e.mock.On("DeleteByWishlistID", ctx, wishlistID)
}
