package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialised domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// GetUnprocessed returns up to limit pending messages, oldest first, locking
	// them for the current transaction so concurrent relays skip them.
	GetUnprocessed(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
