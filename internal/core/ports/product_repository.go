package ports

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
)

// ProductRepository persists catalog products and guards their stock.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error

	// Update overwrites every editable attribute, including stock.
	Update(ctx context.Context, product *catalog.Product) error

	// Get returns errs.ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetMany loads the products with the given ids in one round trip.
	// Missing ids are simply absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)

	// DecrementStock atomically takes quantity units from stock, but only if at
	// least that many remain. Otherwise it changes nothing and returns a
	// conflict caused by catalog.ErrInsufficientStock.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
