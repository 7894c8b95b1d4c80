package queries

import (
	"context"

	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT"+productColumns+"\nFROM products\nWHERE id = ?",
		query.ProductID().Bytes(),
	).Rows()
	if err != nil {
		return ProductView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductView{}, err
		}
		return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	return scanProduct(rows)
}
