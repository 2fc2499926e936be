package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	crud[entity.OrderDetails]
	txManager   repository.TransactionManager
	orderRepo   repository.OrderDetailsRepository
	itemRepo    repository.OrderItemRepository
	paymentRepo repository.PaymentDetailsRepository
	events      eventEmitter
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderDetailsRepository
	ItemRepo    repository.OrderItemRepository
	PaymentRepo repository.PaymentDetailsRepository
	Publisher   service.EventPublisher `optional:"true"`
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		crud:        newCrud[entity.OrderDetails](params.OrderRepo, "order"),
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		itemRepo:    params.ItemRepo,
		paymentRepo: params.PaymentRepo,
		events:      eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

// PlaceOrder validates every line before opening the transaction.
func (s *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.OrderView, error) {
	at := now()
	order, err := entity.NewOrderDetails(entity.OrderDetailsParams{UserID: input.UserID, Total: input.Total}, at)
	if err != nil {
		return nil, err
	}

	// A placeholder order id lets each line pass validation up front.
	lines := make([]*entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		item, err := entity.NewOrderItem(entity.OrderItemParams{
			OrderDetailsID: uuid.Max,
			ProductID:      line.ProductID,
			ProductSkuID:   line.ProductSkuID,
			Quantity:       line.Quantity,
		}, at)
		if err != nil {
			return nil, err
		}
		lines = append(lines, item)
	}

	view := &usecase.OrderView{}
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		saved, err := repos.NewOrderDetailsRepository().Save(ctx, order)
		if err != nil {
			return errors.Wrap(err, "failed to save order")
		}
		view.Order = saved

		itemRepo := repos.NewOrderItemRepository()
		for _, item := range lines {
			item.OrderDetailsID = saved.ID
			savedItem, err := itemRepo.Save(ctx, item)
			if err != nil {
				return errors.Wrap(err, "failed to save order item")
			}
			view.Items = append(view.Items, savedItem)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Order placed",
		slog.Any("orderID", view.Order.ID),
		slog.Int("items", len(view.Items)),
	)
	s.events.emit(ctx, service.EventOrderCreated, view.Order.ID, map[string]string{
		"user_id": view.Order.UserID.String(),
		"total":   view.Order.Total.String(),
		"items":   strconv.Itoa(len(view.Items)),
	})

	return view, nil
}

func (s *orderService) Create(ctx context.Context, params entity.OrderDetailsParams) (*entity.OrderDetails, error) {
	order, err := entity.NewOrderDetails(params, now())
	if err != nil {
		return nil, err
	}

	saved, err := s.save(ctx, order)
	if err != nil {
		return nil, err
	}
	s.events.emit(ctx, service.EventOrderCreated, saved.ID, map[string]string{
		"user_id": saved.UserID.String(),
		"total":   saved.Total.String(),
	})

	return saved, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &usecase.OrderView{Order: order}
	payment, err := s.paymentRepo.FindByOrderID(ctx, id)
	switch {
	case err == nil:
		view.PaymentID = &payment.ID
	case !errors.Is(err, repository.ErrRecordNotFound):
		return nil, errors.Wrap(err, "failed to find order payment")
	}

	view.Items, err = s.itemRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	return view, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, patch entity.OrderDetailsPatch) (*entity.OrderDetails, error) {
	return s.update(ctx, id, func(o entity.OrderDetails, at time.Time) (entity.OrderDetails, error) {
		next := o.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := orderCascade(id).run(ctx, s.txManager); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Order deleted", slog.Any("orderID", id))
	s.events.emit(ctx, service.EventOrderDeleted, id, nil)

	return nil
}

func (s *orderService) List(ctx context.Context) ([]*entity.OrderDetails, error) {
	return s.list(ctx)
}

func (s *orderService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

func (s *orderService) FindByUserIDOrderByCreatedAtDesc(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetails, error) {
	return s.orderRepo.FindByUserIDOrderByCreatedAtDesc(ctx, userID)
}

func (s *orderService) FindByTotalGreaterThanEqual(ctx context.Context, min decimal.Decimal) ([]*entity.OrderDetails, error) {
	return s.orderRepo.FindByTotalGreaterThanEqual(ctx, min)
}

func (s *orderService) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error) {
	return s.orderRepo.FindCreatedAfter(ctx, t)
}

func (s *orderService) FindUpdatedBefore(ctx context.Context, t time.Time) ([]*entity.OrderDetails, error) {
	return s.orderRepo.FindUpdatedBefore(ctx, t)
}

func (s *orderService) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetails, error) {
	return s.orderRepo.FindByPaymentID(ctx, paymentID)
}

type orderItemService struct {
	crud[entity.OrderItem]
	repo      repository.OrderItemRepository
	orderRepo repository.OrderDetailsRepository
}

// OrderItemServiceParams holds dependencies for OrderItemService, injected by Fx.
type OrderItemServiceParams struct {
	fx.In

	ItemRepo  repository.OrderItemRepository
	OrderRepo repository.OrderDetailsRepository
}

// NewOrderItemService is the constructor for orderItemService.
func NewOrderItemService(params OrderItemServiceParams) usecase.OrderItemUsecase {
	return &orderItemService{
		crud:      newCrud[entity.OrderItem](params.ItemRepo, "order item"),
		repo:      params.ItemRepo,
		orderRepo: params.OrderRepo,
	}
}

func (s *orderItemService) Create(ctx context.Context, params entity.OrderItemParams) (*entity.OrderItem, error) {
	item, err := entity.NewOrderItem(params, now())
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.orderRepo, "order", item.OrderDetailsID); err != nil {
		return nil, err
	}

	return s.save(ctx, item)
}

func (s *orderItemService) Get(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	return s.get(ctx, id)
}

func (s *orderItemService) Update(ctx context.Context, id uuid.UUID, patch entity.OrderItemPatch) (*entity.OrderItem, error) {
	return s.update(ctx, id, func(i entity.OrderItem, at time.Time) (entity.OrderItem, error) {
		next := i.Apply(patch, at)

		return next, next.Validate()
	})
}

func (s *orderItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id)
}

func (s *orderItemService) List(ctx context.Context) ([]*entity.OrderItem, error) {
	return s.list(ctx)
}

func (s *orderItemService) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}
