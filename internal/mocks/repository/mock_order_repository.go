package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockOrderDetailsRepository is a mock of repository.OrderDetailsRepository.
type MockOrderDetailsRepository struct {
	crudMock[entity.OrderDetails]
}

// NewMockOrderDetailsRepository creates a mock whose expectations are asserted on cleanup.
func NewMockOrderDetailsRepository(t testingT) *MockOrderDetailsRepository {
	m := &MockOrderDetailsRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderDetailsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error) {
	ret := m.MethodCalled("FindByUserID", ctx, userID)

	return sliceOrNil[entity.OrderDetails](ret, 0), ret.Error(1)
}

func (m *MockOrderDetailsRepository) FindByUserIDOrderByCreatedAtDesc(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error) {
	ret := m.MethodCalled("FindByUserIDOrderByCreatedAtDesc", ctx, userID)

	return sliceOrNil[entity.OrderDetails](ret, 0), ret.Error(1)
}

func (m *MockOrderDetailsRepository) FindByTotalGreaterThanEqual(ctx context.Context, min decimal.Decimal) ([]*entity.OrderDetails, error) {
	ret := m.MethodCalled("FindByTotalGreaterThanEqual", ctx, min)

	return sliceOrNil[entity.OrderDetails](ret, 0), ret.Error(1)
}

func (m *MockOrderDetailsRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error) {
	ret := m.MethodCalled("FindCreatedAfter", ctx, t)

	return sliceOrNil[entity.OrderDetails](ret, 0), ret.Error(1)
}

func (m *MockOrderDetailsRepository) FindUpdatedBefore(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error) {
	ret := m.MethodCalled("FindUpdatedBefore", ctx, t)

	return sliceOrNil[entity.OrderDetails](ret, 0), ret.Error(1)
}

func (m *MockOrderDetailsRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetails, error) {
	ret := m.MethodCalled("FindByPaymentID", ctx, paymentID)

	return sliceOrNil[entity.OrderDetails](ret, 0), ret.Error(1)
}

func (m *MockOrderDetailsRepository) EXPECT() *MockOrderDetailsRepository_Expecter {
	return &MockOrderDetailsRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockOrderDetailsRepository_Expecter struct {
	crudExpecter
}

func (e *MockOrderDetailsRepository_Expecter) FindByUserID(ctx, userID any) *mock.Call {
	return e.mock.On("FindByUserID", ctx, userID)
}

func (e *MockOrderDetailsRepository_Expecter) FindByUserIDOrderByCreatedAtDesc(ctx, userID any) *mock.Call {
	return e.mock.On("FindByUserIDOrderByCreatedAtDesc", ctx, userID)
}

func (e *MockOrderDetailsRepository_Expecter) FindByTotalGreaterThanEqual(ctx, min any) *mock.Call {
	return e.mock.On("FindByTotalGreaterThanEqual", ctx, min)
}

func (e *MockOrderDetailsRepository_Expecter) FindCreatedAfter(ctx, t any) *mock.Call {
	return e.mock.On("FindCreatedAfter", ctx, t)
}

func (e *MockOrderDetailsRepository_Expecter) FindUpdatedBefore(ctx, t any) *mock.Call {
	return e.mock.On("FindUpdatedBefore", ctx, t)
}

func (e *MockOrderDetailsRepository_Expecter) FindByPaymentID(ctx, paymentID any) *mock.Call {
	return e.mock.On("FindByPaymentID", ctx, paymentID)
}

// MockOrderItemRepository is a mock of repository.OrderItemRepository.
type MockOrderItemRepository struct {
	crudMock[entity.OrderItem]
}

// NewMockOrderItemRepository creates a mock whose expectations are asserted on cleanup.
func NewMockOrderItemRepository(t testingT) *MockOrderItemRepository {
	m := &MockOrderItemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderItemRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	ret := m.MethodCalled("FindByOrderID", ctx, orderID)

	return sliceOrNil[entity.OrderItem](ret, 0), ret.Error(1)
}

func (m *MockOrderItemRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	ret := m.MethodCalled("DeleteByOrderID", ctx, orderID)

	return countOf(ret, 0), ret.Error(1)
}

func (m *MockOrderItemRepository) EXPECT() *MockOrderItemRepository_Expecter {
	return &MockOrderItemRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockOrderItemRepository_Expecter struct {
	crudExpecter
}

func (e *MockOrderItemRepository_Expecter) FindByOrderID(ctx, orderID any) *mock.Call {
	return e.mock.On("FindByOrderID", ctx, orderID)
}

func (e *MockOrderItemRepository_Expecter) DeleteByOrderID(ctx, orderID any) *mock.Call {
	return e.mock.On("DeleteByOrderID", ctx, orderID)
}

// MockPaymentDetailsRepository is a mock of repository.PaymentDetailsRepository.
type MockPaymentDetailsRepository struct {
	crudMock[entity.PaymentDetails]
}

// NewMockPaymentDetailsRepository creates a mock whose expectations are asserted on cleanup.
func NewMockPaymentDetailsRepository(t testingT) *MockPaymentDetailsRepository {
	m := &MockPaymentDetailsRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentDetailsRepository) FindByProvider(ctx context.Context, provider string) ([]*entity.PaymentDetails, error) {
	ret := m.MethodCalled("FindByProvider", ctx, provider)

	return sliceOrNil[entity.PaymentDetails](ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) FindByStatus(ctx context.Context, status string) ([]*entity.PaymentDetails, error) {
	ret := m.MethodCalled("FindByStatus", ctx, status)

	return sliceOrNil[entity.PaymentDetails](ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.PaymentDetails, error) {
	ret := m.MethodCalled("FindCreatedAfter", ctx, t)

	return sliceOrNil[entity.PaymentDetails](ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.PaymentDetails, error) {
	ret := m.MethodCalled("FindCreatedBetween", ctx, from, to)

	return sliceOrNil[entity.PaymentDetails](ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ret := m.MethodCalled("CountByStatus", ctx, status)

	return countOf(ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentDetails, error) {
	ret := m.MethodCalled("FindByOrderID", ctx, orderID)

	return objectOrNil[entity.PaymentDetails](ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	ret := m.MethodCalled("DeleteByOrderID", ctx, orderID)

	return countOf(ret, 0), ret.Error(1)
}

func (m *MockPaymentDetailsRepository) EXPECT() *MockPaymentDetailsRepository_Expecter {
	return &MockPaymentDetailsRepository_Expecter{crudExpecter{mock: &m.Mock}}
}

type MockPaymentDetailsRepository_Expecter struct {
	crudExpecter
}

func (e *MockPaymentDetailsRepository_Expecter) FindByProvider(ctx, provider any) *mock.Call {
	return e.mock.On("FindByProvider", ctx, provider)
}

func (e *MockPaymentDetailsRepository_Expecter) FindByStatus(ctx, status any) *mock.Call {
	return e.mock.On("FindByStatus", ctx, status)
}

func (e *MockPaymentDetailsRepository_Expecter) FindCreatedAfter(ctx, t any) *mock.Call {
	return e.mock.On("FindCreatedAfter", ctx, t)
}

func (e *MockPaymentDetailsRepository_Expecter) FindCreatedBetween(ctx, from, to any) *mock.Call {
	return e.mock.On("FindCreatedBetween", ctx, from, to)
}

func (e *MockPaymentDetailsRepository_Expecter) CountByStatus(ctx, status any) *mock.Call {
	return e.mock.On("CountByStatus", ctx, status)
}

func (e *MockPaymentDetailsRepository_Expecter) FindByOrderID(ctx, orderID any) *mock.Call {
	return e.mock.On("FindByOrderID", ctx, orderID)
}

func (e *MockPaymentDetailsRepository_Expecter) DeleteByOrderID(ctx, orderID any) *mock.Call {
	return e.mock.On("DeleteByOrderID", ctx, orderID)
}
