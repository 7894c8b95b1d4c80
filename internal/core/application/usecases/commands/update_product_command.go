package commands

import (
	"errors"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand edits a product, stock included. Only supplied fields change.
type UpdateProductCommand struct {
	productID kernel.UUID
	changes   catalog.Changes

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID string, actor kernel.Actor, fields ProductFields) (UpdateProductCommand, error) {
	if err := adminOnly(actor, "update product"); err != nil {
		return UpdateProductCommand{}, err
	}

	id, err := kernel.UUIDFromString(productID)
	if err != nil {
		return UpdateProductCommand{}, errs.NewObjectNotFoundErrorWithCause("product", productID, err)
	}

	changes, err := fields.changes()
	if err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: id,
		changes:   changes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Changes() catalog.Changes {
	return c.changes
}
