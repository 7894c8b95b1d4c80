package commands

import (
	"context"
	"fmt"
	"time"

	"bakery/internal/core/ports"
)

// RelayOutboxCommandHandler publishes pending outbox messages in order of
// occurrence. It stops at the first failed publish; that message and the rest
// of the batch stay pending for the next run, while the ones already sent are
// marked processed.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns how many messages were published. A publish failure is
// returned together with the count of messages sent before it.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := 0
	var publishErr error
	for _, msg := range messages {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", msg.EventType, msg.ID, err)
			break
		}
		if err = repo.MarkProcessed(ctx, msg.ID, time.Now().UTC()); err != nil {
			return 0, err
		}
		published++
	}

	if published > 0 {
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return published, publishErr
}
