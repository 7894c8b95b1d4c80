package queries

import (
	"context"
	"database/sql"
	"strings"

	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productColumns = `
	id,
	name,
	description,
	category,
	price,
	stock,
	image,
	featured,
	created_at,
	updated_at`

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns matching products, most recently created first.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if query.Category() != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, query.Category())
	}
	if f := query.Featured(); f != nil {
		conditions = append(conditions, "featured = ?")
		args = append(args, *f)
	}

	sqlQuery := "SELECT" + productColumns + "\nFROM products"
	if len(conditions) > 0 {
		sqlQuery += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += "\nORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		view, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (ProductView, error) {
	var (
		view  ProductView
		id    uuid.UUID
		price decimal.Decimal
	)

	err := rows.Scan(
		&id,
		&view.Name,
		&view.Description,
		&view.Category,
		&price,
		&view.Stock,
		&view.Image,
		&view.Featured,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return ProductView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProductView{}, err
	}
	view.Price = kernel.ClampedMoney(price)

	return view, nil
}
