package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes domain events after commit. A failed publish is
// logged; the write it describes has already succeeded.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType string, aggregateID uuid.UUID, attrs map[string]string) {
	if e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID.String(),
		OccurredAt:  now(),
		Attributes:  attrs,
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish domain event",
			slog.String("type", eventType),
			slog.String("aggregateID", event.AggregateID),
			slog.Any("error", err),
		)
	}
}
