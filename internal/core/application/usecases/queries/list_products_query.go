package queries

import (
	"errors"
	"strings"

	"bakery/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery browses the catalog. It is public.
//
//	query := NewListProductsQuery(c.QueryParam("category"), featured)
//	products, err := handler.Handle(ctx, query)
type ListProductsQuery struct {
	category string
	featured *bool

	guard guard.ConstructorGuard
}

// NewListProductsQuery treats an empty category or "All" as no category
// filter, and a nil featured flag as no featured filter.
func NewListProductsQuery(category string, featured *bool) ListProductsQuery {
	query := ListProductsQuery{guard: guard.NewConstructorGuard()}
	if filtering(category) {
		query.category = strings.TrimSpace(category)
	}
	if featured != nil {
		f := *featured
		query.featured = &f
	}
	return query
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category is empty when the catalog is not filtered by category.
func (q ListProductsQuery) Category() string {
	return q.category
}

func (q ListProductsQuery) Featured() *bool {
	return q.featured
}
