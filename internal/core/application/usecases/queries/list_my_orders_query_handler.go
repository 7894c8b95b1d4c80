package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListMyOrdersQueryHandler struct {
	orders orderReader
}

func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{orders: orderReader{db: db}}
}

func (h ListMyOrdersQueryHandler) Handle(ctx context.Context, query ListMyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.find(ctx, []string{"user_id = ?"}, query.Actor().ID().Bytes())
}
