package queries

import (
	"context"

	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	orders orderReader
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orderReader{db: db}}
}

// Handle returns ObjectNotFound for a missing order and Forbidden when the
// actor neither owns the order nor is an administrator.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	found, err := h.orders.find(ctx, []string{"id = ?"}, query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(found) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	view := found[0]
	if !query.Actor().CanAccess(view.UserID) {
		return OrderView{}, errs.NewForbiddenError("view order")
	}

	return view, nil
}
