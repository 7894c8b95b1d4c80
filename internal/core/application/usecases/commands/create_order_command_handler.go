package commands

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders.
//
// Everything runs in one transaction: the UPI switch and products are read,
// the order is inserted and each product's stock is decremented with a
// conditional update. If any decrement finds too little stock left (another
// order won the race) the whole transaction rolls back, including the order.
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	placer     services.OrderPlacer
}

func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
	}
}

// Handle places the order and returns it as persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if cmd.PaymentMethod() == order.MethodUPI {
		current, err := uow.SettingsRepository().Get(ctx)
		if err != nil {
			return nil, err
		}
		if err = current.EnsureUPIAvailable(); err != nil {
			return nil, err
		}
	}

	productRepo := uow.ProductRepository()
	products, err := productRepo.GetMany(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	placed, reservations, err := h.placer.Place(services.PlacementRequest{
		OrderID:             cmd.OrderID(),
		UserID:              cmd.Actor().ID(),
		Lines:               cmd.Lines(),
		ShippingAddress:     cmd.ShippingAddress(),
		PaymentMethod:       cmd.PaymentMethod(),
		DeliveryFeeOverride: cmd.DeliveryFee(),
		TransactionNote:     cmd.TransactionNote(),
	}, products, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	for _, r := range reservations {
		if err = productRepo.DecrementStock(ctx, r.ProductID, r.Quantity); err != nil {
			if errors.Is(err, catalog.ErrInsufficientStock) {
				return nil, catalog.NewInsufficientStockError(r.ProductName)
			}
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
