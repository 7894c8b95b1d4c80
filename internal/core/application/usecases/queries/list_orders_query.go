package queries

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the administrator's order board, optionally filtered
// by order status and payment status.
type ListOrdersQuery struct {
	status        *order.Status
	paymentStatus *order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewListOrdersQuery rejects non-administrators. An empty filter or "All"
// disables that filter; any other unknown value is invalid.
func NewListOrdersQuery(actor kernel.Actor, status, paymentStatus string) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if !actor.IsAdmin() {
		return ListOrdersQuery{}, errs.NewForbiddenError("list orders")
	}

	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if filtering(status) {
		s, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = &s
	}

	if filtering(paymentStatus) {
		s, err := order.ParsePaymentStatus(paymentStatus)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.paymentStatus = &s
	}

	return query, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) PaymentStatus() *order.PaymentStatus {
	return q.paymentStatus
}

func filtering(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && !strings.EqualFold(value, "all")
}
