package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies status transitions. The write is
// version-checked: if the order changed after it was read, the repository
// reports a version conflict and nothing is retried.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ApplyUpdate(cmd.Update(), cmd.Actor().ID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
