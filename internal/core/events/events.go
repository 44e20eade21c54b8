// Package events carries the explicit post-commit notifications emitted by
// mutating operations. Emission always happens after the storage transaction
// has committed; nothing in this package is triggered by persistence itself.
package events

import (
	"context"
	"log/slog"
	"time"
)

// Kind identifies what happened.
type Kind string

const (
	PriceListCreated  Kind = "pricelist.created"
	PriceListDeleted  Kind = "pricelist.deleted"
	CurrencyAdded     Kind = "currency.added"
	CurrencyRemoved   Kind = "currency.removed"
	RateRecorded      Kind = "currency.rate_recorded"
	ProductAssigned   Kind = "catalog.product_assigned"
	ProductUnassigned Kind = "catalog.product_unassigned"
	PriceRecorded     Kind = "catalog.price_recorded"
)

// Event is one post-commit notification.
type Event struct {
	Kind        Kind      `json:"kind"`
	PriceListID string    `json:"priceListID"`
	EntityID    string    `json:"entityID"` // currency, assignment or record ID
	ActorUserID string    `json:"actorUserID"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Emitter consumes post-commit events. Implementations must not fail the
// originating operation; emission is best effort.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

// LogEmitter writes events to the structured log. It is the default consumer;
// a queue-backed emitter can replace it without touching the services.
type LogEmitter struct {
	logger *slog.Logger
}

// NewLogEmitter creates a LogEmitter on the given logger.
func NewLogEmitter(logger *slog.Logger) *LogEmitter {
	return &LogEmitter{logger: logger}
}

// Emit logs the event.
func (e *LogEmitter) Emit(_ context.Context, ev Event) {
	e.logger.Info("domain event",
		slog.String("kind", string(ev.Kind)),
		slog.String("price_list_id", ev.PriceListID),
		slog.String("entity_id", ev.EntityID),
		slog.String("actor_user_id", ev.ActorUserID),
		slog.Time("occurred_at", ev.OccurredAt),
	)
}

var _ Emitter = (*LogEmitter)(nil)
