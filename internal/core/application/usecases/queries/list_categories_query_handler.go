package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle returns categories sorted alphabetically.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM products
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
