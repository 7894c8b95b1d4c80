package commands

import (
	"errors"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

type CreateProductCommand struct {
	productID kernel.UUID
	details   catalog.Details

	guard guard.ConstructorGuard
}

// NewCreateProductCommand requires every text field and a price. Stock
// defaults to zero and featured to false.
func NewCreateProductCommand(actor kernel.Actor, fields ProductFields) (CreateProductCommand, error) {
	if err := adminOnly(actor, "create product"); err != nil {
		return CreateProductCommand{}, err
	}

	var missing []error
	for _, f := range []struct {
		param string
		value *string
	}{
		{"name", fields.Name},
		{"description", fields.Description},
		{"category", fields.Category},
		{"image", fields.Image},
	} {
		if f.value == nil {
			missing = append(missing, errs.NewValueIsRequiredError(f.param))
		}
	}
	if fields.Price == nil {
		missing = append(missing, errs.NewValueIsRequiredError("price"))
	}
	if len(missing) > 0 {
		return CreateProductCommand{}, errors.Join(missing...)
	}

	changes, err := fields.changes()
	if err != nil {
		return CreateProductCommand{}, err
	}

	details := catalog.Details{
		Name:        *changes.Name,
		Description: *changes.Description,
		Category:    *changes.Category,
		Price:       *changes.Price,
		Image:       *changes.Image,
	}
	if changes.Stock != nil {
		details.Stock = *changes.Stock
	}
	if changes.Featured != nil {
		details.Featured = *changes.Featured
	}

	return CreateProductCommand{
		productID: kernel.NewUUID(),
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Details() catalog.Details {
	return c.details
}
