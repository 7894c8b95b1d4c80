// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work, and the outbound event publisher.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	// Add inserts a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, payment and note changes. The write only succeeds
	// if the stored version still equals aggregate.Version(); otherwise an
	// errs.VersionIsInvalidError is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
