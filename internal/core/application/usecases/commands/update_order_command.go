package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is an administrative status transition request.
type UpdateOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	update  order.Update

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand accepts any combination of order status, payment
// status and transaction note; nil means "leave unchanged". A request made
// only of blank statuses is empty. A blank status next to another change is
// invalid.
func NewUpdateOrderCommand(
	orderID string,
	actor kernel.Actor,
	orderStatus, paymentStatus, transactionNote *string,
) (UpdateOrderCommand, error) {
	if err := adminOnly(actor, "update order"); err != nil {
		return UpdateOrderCommand{}, err
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return UpdateOrderCommand{}, errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
	}

	var update order.Update

	if supplied(orderStatus) {
		status, err := order.ParseStatus(*orderStatus)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		update.Status = &status
	}

	if supplied(paymentStatus) {
		status, err := order.ParsePaymentStatus(*paymentStatus)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		update.PaymentStatus = &status
	}

	if transactionNote != nil {
		note := *transactionNote
		update.TransactionNote = &note
	}

	if update.IsEmpty() {
		return UpdateOrderCommand{}, order.ErrNoUpdateFields
	}
	if blank(orderStatus) {
		return UpdateOrderCommand{}, order.ErrInvalidOrderStatus
	}
	if blank(paymentStatus) {
		return UpdateOrderCommand{}, order.ErrInvalidPaymentStatus
	}

	return UpdateOrderCommand{
		orderID: id,
		actor:   actor,
		update:  update,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewSetOrderStatusCommand builds a transition that only moves the order status.
func NewSetOrderStatusCommand(orderID string, actor kernel.Actor, status string) (UpdateOrderCommand, error) {
	if strings.TrimSpace(status) == "" {
		if err := adminOnly(actor, "update order"); err != nil {
			return UpdateOrderCommand{}, err
		}
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderStatus")
	}
	return NewUpdateOrderCommand(orderID, actor, &status, nil, nil)
}

// NewSetPaymentStatusCommand builds a transition of the payment status with an
// optional note.
func NewSetPaymentStatusCommand(
	orderID string,
	actor kernel.Actor,
	paymentStatus string,
	transactionNote *string,
) (UpdateOrderCommand, error) {
	if strings.TrimSpace(paymentStatus) == "" {
		if err := adminOnly(actor, "update order"); err != nil {
			return UpdateOrderCommand{}, err
		}
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("paymentStatus")
	}
	return NewUpdateOrderCommand(orderID, actor, nil, &paymentStatus, transactionNote)
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateOrderCommand) Update() order.Update {
	return c.update
}

func supplied(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

func adminOnly(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError(action)
	}
	return nil
}
