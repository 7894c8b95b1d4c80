package commands

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested line as received from the client.
type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand is a validated checkout request.
//
// Validation is fail-fast and ordered: items (non-empty, well-formed product
// ids, positive quantities) first, then the shipping address.
//
//	cmd, err := NewCreateOrderCommand(actor, items, address, "UPI", nil, "UTR 4471")
//	if err != nil {
//	    return err // 400
//	}
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID         kernel.UUID
	actor           kernel.Actor
	lines           []services.RequestedLine
	address         order.ShippingAddress
	paymentMethod   order.PaymentMethod
	deliveryFee     *kernel.Money
	transactionNote string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates a checkout request. paymentMethod "UPI"
// selects UPI and any other value cash on delivery. A negative deliveryFee
// override is treated as zero.
func NewCreateOrderCommand(
	actor kernel.Actor,
	items []CreateOrderItem,
	address order.AddressFields,
	paymentMethod string,
	deliveryFee *float64,
	transactionNote string,
) (CreateOrderCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	if len(items) == 0 {
		return CreateOrderCommand{}, order.ErrEmptyItems
	}

	lines := make([]services.RequestedLine, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return CreateOrderCommand{}, fmt.Errorf("%w: %q", order.ErrInvalidProductID, item.ProductID)
		}
		if item.Quantity < 1 {
			return CreateOrderCommand{}, order.ErrInvalidQuantity
		}
		lines = append(lines, services.RequestedLine{ProductID: productID, Quantity: item.Quantity})
	}

	shippingAddress, err := order.NewShippingAddress(address)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	cmd := CreateOrderCommand{
		orderID:         kernel.NewUUID(),
		actor:           actor,
		lines:           lines,
		address:         shippingAddress,
		paymentMethod:   order.PaymentMethodFromSelector(paymentMethod),
		transactionNote: transactionNote,
		guard:           guard.NewConstructorGuard(),
	}

	if deliveryFee != nil {
		fee := kernel.ClampedMoney(decimal.NewFromFloat(*deliveryFee).Round(2))
		cmd.deliveryFee = &fee
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Lines returns the requested lines in submission order, duplicates included.
func (c CreateOrderCommand) Lines() []services.RequestedLine {
	lines := make([]services.RequestedLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductIDs returns each referenced product once.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

func (c CreateOrderCommand) ShippingAddress() order.ShippingAddress {
	return c.address
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryFee is the caller's override, nil when the default applies.
func (c CreateOrderCommand) DeliveryFee() *kernel.Money {
	return c.deliveryFee
}

func (c CreateOrderCommand) TransactionNote() string {
	return c.transactionNote
}
