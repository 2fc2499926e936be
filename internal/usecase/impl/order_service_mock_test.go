package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds the mocks behind an order service.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderDetailsRepository
	itemRepo    *mockRepo.MockOrderItemRepository
	paymentRepo *mockRepo.MockPaymentDetailsRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	f := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderDetailsRepository(t),
		itemRepo:    mockRepo.NewMockOrderItemRepository(t),
		paymentRepo: mockRepo.NewMockPaymentDetailsRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewOrderService(OrderServiceParams{
		TxManager:   f.txManager,
		OrderRepo:   f.orderRepo,
		ItemRepo:    f.itemRepo,
		PaymentRepo: f.paymentRepo,
		Publisher:   f.publisher,
		Logger:      newDiscardLogger(),
	})

	return f
}

// inTransaction makes Execute hand the mock factory to the callback and
// return whatever the callback returns.
func (f orderServiceFixtures) inTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewOrderDetailsRepository().Return(f.orderRepo).Maybe()
	f.factory.EXPECT().NewOrderItemRepository().Return(f.itemRepo).Maybe()
	f.factory.EXPECT().NewPaymentDetailsRepository().Return(f.paymentRepo).Maybe()
}

func TestOrderService_Delete_Success(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()
	f.inTransaction()

	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(true, nil).Once()
	f.itemRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(3), nil)
	f.paymentRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(1), nil)
	f.orderRepo.EXPECT().DeleteByID(ctx, id).Return(nil)
	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(false, nil).Once()
	f.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventOrderDeleted && e.AggregateID == id.String()
		})).
		Return(nil)

	require.NoError(t, f.service.Delete(ctx, id))
}

func TestOrderService_Delete_StepFailureNamesStep(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()
	f.inTransaction()

	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(true, nil).Once()
	f.itemRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(2), nil)
	f.paymentRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(0), errors.New("connection reset"))

	err := f.service.Delete(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrityViolation))

	var violation *domainerrors.IntegrityViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "delete payment by order", violation.Step())
	f.orderRepo.AssertNotCalled(t, "DeleteByID", ctx, id)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_Delete_ParentSurvives(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()
	f.inTransaction()

	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(true, nil).Twice()
	f.itemRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(0), nil)
	f.paymentRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(0), nil)
	f.orderRepo.EXPECT().DeleteByID(ctx, id).Return(nil)

	err := f.service.Delete(ctx, id)

	var violation *domainerrors.IntegrityViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "verify deletion", violation.Step())
}

func TestOrderService_Delete_AbsentOrderIsNotFound(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()
	f.inTransaction()

	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(false, nil)

	err := f.service.Delete(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	f.itemRepo.AssertNotCalled(t, "DeleteByOrderID", ctx, id)
}

func TestOrderService_Delete_PublishFailureIsNotReturned(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()
	f.inTransaction()

	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(true, nil).Once()
	f.itemRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(0), nil)
	f.paymentRepo.EXPECT().DeleteByOrderID(ctx, id).Return(int64(0), nil)
	f.orderRepo.EXPECT().DeleteByID(ctx, id).Return(nil)
	f.orderRepo.EXPECT().ExistsByID(ctx, id).Return(false, nil).Once()
	f.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	assert.NoError(t, f.service.Delete(ctx, id))
}
