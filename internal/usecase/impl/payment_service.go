package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type paymentService struct {
	crud[entity.PaymentDetails]
	repo      repository.PaymentDetailsRepository
	orderRepo repository.OrderDetailsRepository
	events    eventEmitter
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentDetailsRepository
	OrderRepo   repository.OrderDetailsRepository
	Publisher   service.EventPublisher `optional:"true"`
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		crud:      newCrud[entity.PaymentDetails](params.PaymentRepo, "payment"),
		repo:      params.PaymentRepo,
		orderRepo: params.OrderRepo,
		events:    eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, orderID uuid.UUID, input usecase.RecordPaymentInput) (*entity.PaymentDetails, error) {
	return s.Create(ctx, entity.PaymentDetailsParams{
		OrderDetailsID: orderID,
		Amount:         input.Amount,
		Provider:       input.Provider,
		Status:         input.Status,
	})
}

// Create checks for an existing payment first; the unique index on the order
// link still rejects a concurrent second insert.
func (s *paymentService) Create(ctx context.Context, params entity.PaymentDetailsParams) (*entity.PaymentDetails, error) {
	payment, err := entity.NewPaymentDetails(params, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.orderRepo, "order", payment.OrderDetailsID); err != nil {
		return nil, err
	}

	_, err = s.repo.FindByOrderID(ctx, payment.OrderDetailsID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrPaymentAlreadyRecorded
	case !errors.Is(err, repository.ErrRecordNotFound):
		return nil, errors.Wrap(err, "failed to check order payment")
	}

	saved, err := s.save(ctx, payment)
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Payment recorded",
		slog.Any("paymentID", saved.ID),
		slog.Any("orderID", saved.OrderDetailsID),
		slog.String("status", saved.Status),
	)
	s.events.emit(ctx, service.EventPaymentRecorded, saved.ID, map[string]string{
		"order_id": saved.OrderDetailsID.String(),
		"amount":   saved.Amount.String(),
		"provider": saved.Provider,
		"status":   saved.Status,
	})

	return saved, nil
}

func (s *paymentService) Get(ctx context.Context, id uuid.UUID) (*entity.PaymentDetails, error) {
	return s.get(ctx, id)
}

func (s *paymentService) Update(ctx context.Context, id uuid.UUID, patch entity.PaymentDetailsPatch) (*entity.PaymentDetails, error) {
	return s.update(ctx, id, func(p entity.PaymentDetails, at time.Time) (entity.PaymentDetails, error) {
		next := p.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *paymentService) List(ctx context.Context) ([]*entity.PaymentDetails, error) {
	return s.list(ctx)
}

func (s *paymentService) FindByProvider(ctx context.Context, provider string) ([]*entity.PaymentDetails, error) {
	return s.repo.FindByProvider(ctx, provider)
}

func (s *paymentService) FindByStatus(ctx context.Context, status string) ([]*entity.PaymentDetails, error) {
	return s.repo.FindByStatus(ctx, status)
}

func (s *paymentService) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.PaymentDetails, error) {
	return s.repo.FindCreatedAfter(ctx, t)
}

func (s *paymentService) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.PaymentDetails, error) {
	return s.repo.FindCreatedBetween(ctx, from, to)
}

func (s *paymentService) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

func (s *paymentService) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentDetails, error) {
	payment, err := s.repo.FindByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.NewNotFoundErrorByKey("payment", "order "+orderID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment by order")
	}

	return payment, nil
}

func (s *paymentService) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	removed, err := s.repo.DeleteByOrderID(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to delete payment by order")
	}
	if removed == 0 {
		return domainerrors.NewNotFoundErrorByKey("payment", "order "+orderID.String())
	}

	return nil
}
