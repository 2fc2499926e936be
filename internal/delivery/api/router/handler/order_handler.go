package handler

import (
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler serves orders, order lines and payments.
type OrderHandler struct {
	orders   usecase.OrderUsecase
	items    usecase.OrderItemUsecase
	payments usecase.PaymentUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(
	orders usecase.OrderUsecase,
	items usecase.OrderItemUsecase,
	payments usecase.PaymentUsecase,
) *OrderHandler {
	return &OrderHandler{orders: orders, items: items, payments: payments}
}

type orderRequest struct {
	UserID uuid.UUID        `json:"user_id"`
	Total  *decimal.Decimal `json:"total"`
}

type orderPatchRequest struct {
	UserID *uuid.UUID       `json:"user_id"`
	Total  *decimal.Decimal `json:"total"`
}

type orderLineRequest struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductSkuID uuid.UUID `json:"product_sku_id"`
	Quantity     int       `json:"quantity"`
}

type placeOrderRequest struct {
	UserID uuid.UUID          `json:"user_id"`
	Total  *decimal.Decimal   `json:"total"`
	Items  []orderLineRequest `json:"items" validate:"required,min=1"`
}

type orderItemRequest struct {
	OrderDetailsID uuid.UUID `json:"order_details_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductSkuID   uuid.UUID `json:"product_sku_id"`
	Quantity       int       `json:"quantity"`
}

type orderItemPatchRequest struct {
	OrderDetailsID *uuid.UUID `json:"order_details_id"`
	ProductID      *uuid.UUID `json:"product_id"`
	ProductSkuID   *uuid.UUID `json:"product_sku_id"`
	Quantity       *int       `json:"quantity"`
}

type paymentRequest struct {
	OrderDetailsID uuid.UUID        `json:"order_details_id"`
	Amount         *decimal.Decimal `json:"amount"`
	Provider       string           `json:"provider"`
	Status         string           `json:"status"`
}

type paymentPatchRequest struct {
	Amount   *decimal.Decimal `json:"amount"`
	Provider *string          `json:"provider"`
	Status   *string          `json:"status"`
}

// orderResponse flattens the order header with its payment id and lines.
type orderResponse struct {
	*entity.OrderDetails
	PaymentID *uuid.UUID          `json:"payment_id"`
	Items     []*entity.OrderItem `json:"items"`
}

func toOrderResponse(view *usecase.OrderView) orderResponse {
	return orderResponse{OrderDetails: view.Order, PaymentID: view.PaymentID, Items: view.Items}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req orderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orders.Create(c.Request().Context(), entity.OrderDetailsParams{UserID: req.UserID, Total: req.Total})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, order)
}

// PlaceOrder writes the header and all lines atomically.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.OrderLineInput{
			ProductID:    item.ProductID,
			ProductSkuID: item.ProductSkuID,
			Quantity:     item.Quantity,
		})
	}

	view, err := h.orders.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID: req.UserID,
		Total:  req.Total,
		Items:  lines,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, toOrderResponse(view))
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toOrderResponse(view))
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req orderPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orders.Update(c.Request().Context(), id, entity.OrderDetailsPatch{UserID: req.UserID, Total: req.Total})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orders.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrdersByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.orders.FindByUserID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrdersByUserNewestFirst(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.orders.FindByUserIDOrderByCreatedAtDesc(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrdersWithTotalAtLeast(c echo.Context) error {
	total, err := pathDecimal(c, "total")
	if err != nil {
		return err
	}

	orders, err := h.orders.FindByTotalGreaterThanEqual(c.Request().Context(), total)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrdersCreatedAfter(c echo.Context) error {
	after, err := pathTime(c, "createdAt")
	if err != nil {
		return err
	}

	orders, err := h.orders.FindCreatedAfter(c.Request().Context(), after)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrdersUpdatedBefore(c echo.Context) error {
	before, err := pathTime(c, "updatedAt")
	if err != nil {
		return err
	}

	orders, err := h.orders.FindUpdatedBefore(c.Request().Context(), before)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrdersByPayment(c echo.Context) error {
	paymentID, err := pathID(c, "paymentId")
	if err != nil {
		return err
	}

	orders, err := h.orders.FindByPaymentID(c.Request().Context(), paymentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *OrderHandler) OrderItems(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.items.FindByOrderID(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, items)
}

func (h *OrderHandler) RecordPayment(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req paymentPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecase.RecordPaymentInput{Amount: req.Amount}
	if req.Provider != nil {
		input.Provider = *req.Provider
	}
	if req.Status != nil {
		input.Status = *req.Status
	}

	payment, err := h.payments.RecordPayment(c.Request().Context(), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, payment)
}

func (h *OrderHandler) OrderPayment(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.FindByOrderID(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payment)
}

func (h *OrderHandler) DeleteOrderPayment(c echo.Context) error {
	orderID, err := pathID(c, "orderDetailsId")
	if err != nil {
		return err
	}

	if err := h.payments.DeleteByOrderID(c.Request().Context(), orderID); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *OrderHandler) CreateItem(c echo.Context) error {
	var req orderItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.items.Create(c.Request().Context(), entity.OrderItemParams{
		OrderDetailsID: req.OrderDetailsID,
		ProductID:      req.ProductID,
		ProductSkuID:   req.ProductSkuID,
		Quantity:       req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, item)
}

func (h *OrderHandler) GetItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.items.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, item)
}

func (h *OrderHandler) UpdateItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req orderItemPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.items.Update(c.Request().Context(), id, entity.OrderItemPatch{
		OrderDetailsID: req.OrderDetailsID,
		ProductID:      req.ProductID,
		ProductSkuID:   req.ProductSkuID,
		Quantity:       req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, item)
}

func (h *OrderHandler) DeleteItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// ListItems filters by ?order_id= when present.
func (h *OrderHandler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	orderID, filtered, err := queryID(c, "order_id")
	if err != nil {
		return err
	}

	var items []*entity.OrderItem
	if filtered {
		items, err = h.items.FindByOrderID(ctx, orderID)
	} else {
		items, err = h.items.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, items)
}

func (h *OrderHandler) CreatePayment(c echo.Context) error {
	var req paymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	payment, err := h.payments.Create(c.Request().Context(), entity.PaymentDetailsParams{
		OrderDetailsID: req.OrderDetailsID,
		Amount:         req.Amount,
		Provider:       req.Provider,
		Status:         req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, payment)
}

func (h *OrderHandler) GetPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payment)
}

func (h *OrderHandler) UpdatePayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req paymentPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	payment, err := h.payments.Update(c.Request().Context(), id, entity.PaymentDetailsPatch{
		Amount:   req.Amount,
		Provider: req.Provider,
		Status:   req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payment)
}

func (h *OrderHandler) DeletePayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.payments.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *OrderHandler) ListPayments(c echo.Context) error {
	payments, err := h.payments.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payments)
}

func (h *OrderHandler) PaymentsByProvider(c echo.Context) error {
	payments, err := h.payments.FindByProvider(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payments)
}

func (h *OrderHandler) PaymentsByStatus(c echo.Context) error {
	payments, err := h.payments.FindByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payments)
}

func (h *OrderHandler) PaymentsCreatedAfter(c echo.Context) error {
	after, err := queryTime(c, "date")
	if err != nil {
		return err
	}

	payments, err := h.payments.FindCreatedAfter(c.Request().Context(), after)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payments)
}

func (h *OrderHandler) PaymentsCreatedBetween(c echo.Context) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return err
	}

	payments, err := h.payments.FindCreatedBetween(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, payments)
}

func (h *OrderHandler) CountPaymentsByStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return invalidParam("status")
	}

	count, err := h.payments.CountByStatus(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, map[string]any{"status": status, "count": count})
}
