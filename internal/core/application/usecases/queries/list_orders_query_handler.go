package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	orders orderReader
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orderReader{db: db}}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if s := query.Status(); s != nil {
		conditions = append(conditions, "order_status = ?")
		args = append(args, s.String())
	}
	if s := query.PaymentStatus(); s != nil {
		conditions = append(conditions, "payment_status = ?")
		args = append(args, s.String())
	}

	return h.orders.find(ctx, conditions, args...)
}
