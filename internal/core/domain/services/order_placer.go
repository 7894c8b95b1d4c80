package services

import (
	"slices"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// RequestedLine is one checkout line as the customer submitted it.
type RequestedLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// Reservation is the total quantity of one product an order takes from stock.
type Reservation struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
}

// PlacementRequest carries a validated checkout request.
type PlacementRequest struct {
	OrderID             kernel.UUID
	UserID              kernel.UUID
	Lines               []RequestedLine
	ShippingAddress     order.ShippingAddress
	PaymentMethod       order.PaymentMethod
	DeliveryFeeOverride *kernel.Money
	TransactionNote     string
}

// OrderPlacer is a domain service that turns a checkout request and the
// current catalog state into a new order plus the stock it must reserve.
//
// Business rules:
//   - every requested product must exist in the catalog
//   - duplicate lines for one product count together against its stock
//   - each line snapshots the product's name, image and price
//
// The placer only checks stock against the products it is given. Callers
// must still decrement stock atomically when persisting the order, in the
// order the reservations are returned, so that concurrent checkouts lock
// product rows in the same sequence.
//
//	placed, reservations, err := services.NewOrderPlacer().Place(req, products, time.Now())
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place validates the request against products and builds the order.
// Reservations hold one entry per product, sorted by product id.
func (OrderPlacer) Place(
	req PlacementRequest,
	products []*catalog.Product,
	now time.Time,
) (*order.Order, []Reservation, error) {
	if len(req.Lines) == 0 {
		return nil, nil, order.ErrEmptyItems
	}

	byID := make(map[kernel.UUID]*catalog.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, nil, err
		}
		byID[p.ID()] = p
	}

	for _, line := range req.Lines {
		if _, ok := byID[line.ProductID]; !ok {
			return nil, nil, catalog.NewUnknownProductError(line.ProductID)
		}
	}

	reservations := make([]Reservation, 0, len(req.Lines))
	index := make(map[kernel.UUID]int, len(req.Lines))
	items := make([]order.LineItem, 0, len(req.Lines))

	for _, line := range req.Lines {
		product := byID[line.ProductID]

		i, seen := index[line.ProductID]
		if !seen {
			i = len(reservations)
			index[line.ProductID] = i
			reservations = append(reservations, Reservation{ProductID: product.ID(), ProductName: product.Name()})
		}
		reservations[i].Quantity += line.Quantity

		if err := product.EnsureAvailable(reservations[i].Quantity); err != nil {
			return nil, nil, err
		}

		item, err := order.NewLineItem(product.ID(), product.Name(), product.Image(), product.Price(), line.Quantity)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(order.Placement{
		ID:                  req.OrderID,
		UserID:              req.UserID,
		Items:               items,
		ShippingAddress:     req.ShippingAddress,
		PaymentMethod:       req.PaymentMethod,
		DeliveryFeeOverride: req.DeliveryFeeOverride,
		TransactionNote:     req.TransactionNote,
	}, now)
	if err != nil {
		return nil, nil, err
	}

	slices.SortFunc(reservations, func(a, b Reservation) int {
		return a.ProductID.Compare(b.ProductID)
	})

	return placed, reservations, nil
}
