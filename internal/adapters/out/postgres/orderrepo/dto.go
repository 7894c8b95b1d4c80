// Package orderrepo maps the Order aggregate onto the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one orders row plus its items. Statuses are stored by their
// display names so ad-hoc SQL and the list filters read naturally.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipping      ShippingDTO     `gorm:"embedded;embeddedPrefix:shipping_"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"not null"`
	PaymentStatus string          `gorm:"not null"`
	OrderStatus   string          `gorm:"not null"`
	Payment       PaymentMetaDTO  `gorm:"embedded;embeddedPrefix:payment_"`
	Version       int             `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a line item snapshot. Position keeps the submitted order.
type OrderItemDTO struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"not null"`
	Image     string          `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

type ShippingDTO struct {
	FullName   string `gorm:"column:full_name"`
	Phone      string `gorm:"column:phone"`
	Line1      string `gorm:"column:line1"`
	Line2      string `gorm:"column:line2"`
	City       string `gorm:"column:city"`
	State      string `gorm:"column:state"`
	PostalCode string `gorm:"column:postal_code"`
	Notes      string `gorm:"column:notes"`
}

type PaymentMetaDTO struct {
	TransactionNote string     `gorm:"column:transaction_note"`
	VerifiedAt      *time.Time `gorm:"column:verified_at"`
	VerifiedBy      *uuid.UUID `gorm:"column:verified_by;type:uuid"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   o.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Image:     item.Image(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
		})
	}

	addr := o.ShippingAddress()
	meta := o.PaymentMeta()

	var verifiedBy *uuid.UUID
	if by := meta.VerifiedBy(); by != nil {
		raw := by.Bytes()
		verifiedBy = &raw
	}

	return OrderDTO{
		ID:     o.ID().Bytes(),
		UserID: o.UserID().Bytes(),
		Items:  items,
		Shipping: ShippingDTO{
			FullName:   addr.FullName(),
			Phone:      addr.Phone(),
			Line1:      addr.Line1(),
			Line2:      addr.Line2(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
			Notes:      addr.Notes(),
		},
		Subtotal:      o.Subtotal().Decimal(),
		DeliveryFee:   o.DeliveryFee().Decimal(),
		Total:         o.Total().Decimal(),
		PaymentMethod: o.PaymentMethod().String(),
		PaymentStatus: o.PaymentStatus().String(),
		OrderStatus:   o.Status().String(),
		Payment: PaymentMetaDTO{
			TransactionNote: meta.TransactionNote(),
			VerifiedAt:      meta.VerifiedAt(),
			VerifiedBy:      verifiedBy,
		},
		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toLineItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewShippingAddress(order.AddressFields{
		FullName:   dto.Shipping.FullName,
		Phone:      dto.Shipping.Phone,
		Line1:      dto.Shipping.Line1,
		Line2:      dto.Shipping.Line2,
		City:       dto.Shipping.City,
		State:      dto.Shipping.State,
		PostalCode: dto.Shipping.PostalCode,
		Notes:      dto.Shipping.Notes,
	})
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var verifiedBy *kernel.UUID
	if dto.Payment.VerifiedBy != nil {
		by, byErr := kernel.UUIDFromBytes(dto.Payment.VerifiedBy[:])
		if byErr != nil {
			return nil, byErr
		}
		verifiedBy = &by
	}

	return order.RestoreOrder(order.State{
		ID:              id,
		UserID:          userID,
		Items:           items,
		ShippingAddress: address,
		Subtotal:        kernel.ClampedMoney(dto.Subtotal),
		DeliveryFee:     kernel.ClampedMoney(dto.DeliveryFee),
		Total:           kernel.ClampedMoney(dto.Total),
		PaymentMethod:   paymentMethod(dto.PaymentMethod),
		PaymentStatus:   paymentStatus,
		PaymentMeta:     order.NewPaymentMeta(dto.Payment.TransactionNote, dto.Payment.VerifiedAt, verifiedBy),
		Status:          status,
		Version:         dto.Version,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func toLineItem(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(productID, dto.Name, dto.Image, kernel.ClampedMoney(dto.UnitPrice), dto.Quantity)
}

// paymentMethod maps a stored method name back; anything unrecognised becomes
// MethodUnknown and fails restoration.
func paymentMethod(s string) order.PaymentMethod {
	switch s {
	case order.MethodCOD.String():
		return order.MethodCOD
	case order.MethodUPI.String():
		return order.MethodUPI
	default:
		return order.MethodUnknown
	}
}
