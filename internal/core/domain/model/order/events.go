package order

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

const (
	EventTypePlaced  = "order.placed"
	EventTypeUpdated = "order.updated"
)

// Event is a domain event recorded by the Order aggregate. The unit of work
// stores pending events in the outbox inside the same transaction as the order.
type Event interface {
	EventType() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

// PlacedEvent is recorded once, when the order is created.
type PlacedEvent struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	UserID        kernel.UUID
	Total         kernel.Money
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Items         int
	At            time.Time
}

func (e PlacedEvent) EventType() string {
	return EventTypePlaced
}

func (e PlacedEvent) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e PlacedEvent) OccurredAt() time.Time {
	return e.At
}

// UpdatedEvent is recorded for every applied status transition.
type UpdatedEvent struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	UserID        kernel.UUID
	OrderStatus   Status
	PaymentStatus PaymentStatus
	UpdatedBy     kernel.UUID
	At            time.Time
}

func (e UpdatedEvent) EventType() string {
	return EventTypeUpdated
}

func (e UpdatedEvent) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e UpdatedEvent) OccurredAt() time.Time {
	return e.At
}
