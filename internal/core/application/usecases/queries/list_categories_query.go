package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery returns the distinct category names in the catalog.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}
