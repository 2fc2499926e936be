package service

import (
	"context"
	"time"
)

// Aggregate event types.
const (
	EventOrderCreated    = "order.created"
	EventOrderDeleted    = "order.deleted"
	EventPaymentRecorded = "payment.recorded"
	EventWishlistDeleted = "wishlist.deleted"
	EventCartDeleted     = "cart.deleted"
)

// DomainEvent is published after an aggregate write has committed.
type DomainEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	EventID     string            `json:"event_id"`
	Type        string            `json:"type"`
	AggregateID string            `json:"aggregate_id"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message broker
type EventPublisher interface {
	// Publish sends one event; the caller decides whether a failure matters.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
