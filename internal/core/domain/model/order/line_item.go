package order

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrInvalidQuantity is returned when a line asks for fewer than one unit.
	ErrInvalidQuantity = errs.NewValueIsInvalidErrorWithCause("items.quantity", errors.New("each item quantity must be at least 1"))

	// ErrInvalidProductID is returned when a line references a malformed product id.
	ErrInvalidProductID = errs.NewValueIsInvalidErrorWithCause("items.product", errors.New("one or more ordered products are invalid"))

	// ErrEmptyItems is returned when an order is submitted without lines.
	ErrEmptyItems = errs.NewValueIsRequiredErrorWithCause("items", errors.New("order items are required"))
)

// LineItem is a product snapshot taken when the order was placed. Later catalog
// edits never change it.
type LineItem struct {
	productID kernel.UUID
	name      string
	image     string
	unitPrice kernel.Money
	quantity  int

	isConstructed bool
}

func NewLineItem(productID kernel.UUID, name, image string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("items.name")
	}

	return LineItem{
		productID:     productID,
		name:          name,
		image:         image,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

func (l LineItem) Validate() error {
	if !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (l LineItem) ProductID() kernel.UUID {
	return l.productID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Image() string {
	return l.image
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l LineItem) Quantity() int {
	return l.quantity
}

// Total is unit price times quantity.
func (l LineItem) Total() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
