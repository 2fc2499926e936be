package repository

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock whose expectations are asserted on cleanup.
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

func (m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &m.Mock}
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

// MockTransactionManager_Execute_Call wraps the Execute expectation.
type MockTransactionManager_Execute_Call struct {
	*mock.Call
}

func (e *MockTransactionManager_Expecter) Execute(ctx, fn any) *MockTransactionManager_Execute_Call {
	return &MockTransactionManager_Execute_Call{Call: e.mock.On("Execute", ctx, fn)}
}

// RunAndReturn makes Execute delegate to run.
func (c *MockTransactionManager_Execute_Call) RunAndReturn(run func(context.Context, func(repository.RepositoryFactory) error) error) *MockTransactionManager_Execute_Call {
	c.Call.Return(run)

	return c
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted on cleanup.
func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) NewOrderDetailsRepository() repository.OrderDetailsRepository {
	return m.Called().Get(0).(repository.OrderDetailsRepository)
}

func (m *MockRepositoryFactory) NewOrderItemRepository() repository.OrderItemRepository {
	return m.Called().Get(0).(repository.OrderItemRepository)
}

func (m *MockRepositoryFactory) NewPaymentDetailsRepository() repository.PaymentDetailsRepository {
	return m.Called().Get(0).(repository.PaymentDetailsRepository)
}

func (m *MockRepositoryFactory) NewCartRepository() repository.CartRepository {
	return m.Called().Get(0).(repository.CartRepository)
}

func (m *MockRepositoryFactory) NewCartItemRepository() repository.CartItemRepository {
	return m.Called().Get(0).(repository.CartItemRepository)
}

func (m *MockRepositoryFactory) NewWishlistRepository() repository.WishlistRepository {
	return m.Called().Get(0).(repository.WishlistRepository)
}

func (m *MockRepositoryFactory) NewWishListItemRepository() repository.WishListItemRepository {
	return m.Called().Get(0).(repository.WishListItemRepository)
}

func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &m.Mock}
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (e *MockRepositoryFactory_Expecter) NewOrderDetailsRepository() *mock.Call {
	return e.mock.On("NewOrderDetailsRepository")
}

func (e *MockRepositoryFactory_Expecter) NewOrderItemRepository() *mock.Call {
	return e.mock.On("NewOrderItemRepository")
}

func (e *MockRepositoryFactory_Expecter) NewPaymentDetailsRepository() *mock.Call {
	return e.mock.On("NewPaymentDetailsRepository")
}

func (e *MockRepositoryFactory_Expecter) NewCartRepository() *mock.Call {
	return e.mock.On("NewCartRepository")
}

func (e *MockRepositoryFactory_Expecter) NewCartItemRepository() *mock.Call {
	return e.mock.On("NewCartItemRepository")
}

func (e *MockRepositoryFactory_Expecter) NewWishlistRepository() *mock.Call {
	return e.mock.On("NewWishlistRepository")
}

func (e *MockRepositoryFactory_Expecter) NewWishListItemRepository() *mock.Call {
	return e.mock.On("NewWishListItemRepository")
}
