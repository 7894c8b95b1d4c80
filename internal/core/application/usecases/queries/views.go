// Package queries contains the read side: order, catalog and settings views
// served straight from the database without loading aggregates for writing.
package queries

import (
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/settings"
)

// OrderView is the read model of an order, shared by the order queries and
// the responses of the order commands.
type OrderView struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Items           []OrderItemView
	ShippingAddress order.AddressFields
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	PaymentMethod   string
	PaymentStatus   string
	OrderStatus     string
	PaymentMeta     PaymentMetaView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemView struct {
	ProductID kernel.UUID
	Name      string
	Image     string
	Price     kernel.Money
	Quantity  int
}

type PaymentMetaView struct {
	TransactionNote string
	VerifiedAt      *time.Time
	VerifiedBy      *kernel.UUID
}

// NewOrderView renders an aggregate as a view.
func NewOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Image:     item.Image(),
			Price:     item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	meta := o.PaymentMeta()
	return OrderView{
		ID:              o.ID(),
		UserID:          o.UserID(),
		Items:           items,
		ShippingAddress: o.ShippingAddress().Fields(),
		Subtotal:        o.Subtotal(),
		DeliveryFee:     o.DeliveryFee(),
		Total:           o.Total(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		OrderStatus:     o.Status().String(),
		PaymentMeta: PaymentMetaView{
			TransactionNote: meta.TransactionNote(),
			VerifiedAt:      meta.VerifiedAt(),
			VerifiedBy:      meta.VerifiedBy(),
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Price       kernel.Money
	Stock       int
	Image       string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProductView(p *catalog.Product) ProductView {
	return ProductView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		Image:       p.Image(),
		Featured:    p.IsFeatured(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// UPIView is the part of the settings visible to shoppers.
type UPIView struct {
	Enabled      bool
	UPIID        string
	Phone        string
	QRImage      string
	Instructions string
}

// SettingsView is the administrator's view of the settings singleton.
type SettingsView struct {
	Key       string
	UPI       UPIView
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSettingsView(s *settings.Settings) SettingsView {
	upi := s.UPI()
	return SettingsView{
		Key: settings.Key,
		UPI: UPIView{
			Enabled:      upi.Enabled(),
			UPIID:        upi.UPIID(),
			Phone:        upi.Phone(),
			QRImage:      upi.QRImage(),
			Instructions: upi.Instructions(),
		},
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
