package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery treats a malformed id as a product that does not exist.
func NewGetProductQuery(productID string) (GetProductQuery, error) {
	id, err := kernel.UUIDFromString(productID)
	if err != nil {
		return GetProductQuery{}, errs.NewObjectNotFoundErrorWithCause("product", productID, err)
	}
	return GetProductQuery{productID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}
