package commands

import (
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// ProductFields carries product attributes as received from an administrator.
// Nil fields were not supplied.
type ProductFields struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
	Image       *string
	Featured    *bool
}

// changes converts the fields to catalog changes, rejecting a negative price
// or stock. Text validation is left to the product itself.
func (f ProductFields) changes() (catalog.Changes, error) {
	c := catalog.Changes{
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
		Image:       f.Image,
		Featured:    f.Featured,
	}

	if f.Price != nil {
		price, err := kernel.NewMoneyFromFloat(*f.Price)
		if err != nil {
			return catalog.Changes{}, err
		}
		c.Price = &price
	}

	if f.Stock != nil {
		if *f.Stock < 0 {
			return catalog.Changes{}, errs.NewValueIsOutOfRangeErrorWithCause(
				"stock", *f.Stock, 0, "unbounded", catalog.ErrNegativeStock)
		}
		stock := *f.Stock
		c.Stock = &stock
	}

	return c, nil
}
