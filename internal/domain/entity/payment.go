package entity

import (
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common payment statuses. Status is stored as free text so providers may report others.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// PaymentDetails records the payment of one order. It owns the order link.
type PaymentDetails struct {
	ID             uuid.UUID       `json:"id"`
	OrderDetailsID uuid.UUID       `json:"order_details_id"`
	Amount         decimal.Decimal `json:"amount"`
	Provider       string          `json:"provider"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PaymentDetailsParams carries the fields accepted on creation.
type PaymentDetailsParams struct {
	OrderDetailsID uuid.UUID
	Amount         *decimal.Decimal
	Provider       string
	Status         string
}

// PaymentDetailsPatch carries the fields a caller may override on update.
type PaymentDetailsPatch struct {
	Amount   *decimal.Decimal
	Provider *string
	Status   *string
}

// NewPaymentDetails validates params and builds a payment record.
func NewPaymentDetails(p PaymentDetailsParams, now time.Time) (*PaymentDetails, error) {
	if err := validation.Check(
		validation.NotZeroID("orderDetailsId", "order", p.OrderDetailsID),
		validation.NotNil("amount", "amount", p.Amount),
		validation.NotBlank("provider", "provider", p.Provider),
		validation.NotBlank("status", "status", p.Status),
		validation.Must("amount", "amount", validation.PhrasePositive, p.Amount == nil || p.Amount.IsPositive()),
	); err != nil {
		return nil, err
	}

	return &PaymentDetails{
		OrderDetailsID: p.OrderDetailsID,
		Amount:         *p.Amount,
		Provider:       p.Provider,
		Status:         p.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Validate checks the payment after an update.
func (p *PaymentDetails) Validate() error {
	return validation.Check(
		validation.NotZeroID("orderDetailsId", "order", p.OrderDetailsID),
		validation.NotBlank("provider", "provider", p.Provider),
		validation.NotBlank("status", "status", p.Status),
		validation.Positive("amount", "amount", p.Amount),
	)
}

// Apply returns a copy of p with the patch overlaid. The order link is not
// patchable; a payment moves to another order only by delete and re-record.
func (p PaymentDetails) Apply(patch PaymentDetailsPatch, now time.Time) PaymentDetails {
	next := p
	next.Amount = Override(p.Amount, patch.Amount)
	next.Provider = Override(p.Provider, patch.Provider)
	next.Status = Override(p.Status, patch.Status)
	next.UpdatedAt = now

	return next
}
