package order

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoUpdateFields is returned when an update names neither status nor note.
	ErrNoUpdateFields = errs.NewValueIsRequiredErrorWithCause("update", errors.New("no valid update fields provided"))

	// DefaultDeliveryFee is charged on any non-empty order unless the caller overrides it.
	DefaultDeliveryFee = kernel.MoneyFromInt(49)
)

// DeliveryFee returns the override when one is given, otherwise the flat
// DefaultDeliveryFee for a positive subtotal and zero for an empty one.
// Overrides are already non-negative because Money cannot be negative.
func DeliveryFee(subtotal kernel.Money, override *kernel.Money) kernel.Money {
	if override != nil {
		return *override
	}
	if subtotal.IsPositive() {
		return DefaultDeliveryFee
	}
	return kernel.Money{}
}

// Order is the aggregate root for a customer purchase. It is created once by
// order placement and afterwards only changes through ApplyUpdate.
//
// Invariants:
//   - at least one line item, each a snapshot of the product at placement time
//   - subtotal is the sum of line totals and total = subtotal + deliveryFee
//   - paymentMethod never changes
//   - paymentMeta carries verification details only while paymentStatus is Paid
type Order struct {
	id              kernel.UUID
	userID          kernel.UUID
	items           []LineItem
	shippingAddress ShippingAddress
	subtotal        kernel.Money
	deliveryFee     kernel.Money
	total           kernel.Money
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	paymentMeta     PaymentMeta
	status          Status
	version         int
	createdAt       time.Time
	updatedAt       time.Time

	events []Event

	isConstructed bool
}

// Placement is everything needed to create an order once products have been
// resolved and snapshotted into line items.
type Placement struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	Items               []LineItem
	ShippingAddress     ShippingAddress
	PaymentMethod       PaymentMethod
	DeliveryFeeOverride *kernel.Money
	TransactionNote     string
}

// NewOrder creates a Pending order, computes its totals and records an order.placed event.
func NewOrder(p Placement, now time.Time) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.UserID.Validate(); err != nil {
		return nil, err
	}
	if len(p.Items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if p.ShippingAddress.IsZero() {
		return nil, errs.NewValueIsRequiredError("shippingAddress")
	}
	if err := p.PaymentMethod.Validate(); err != nil {
		return nil, err
	}

	items := make([]LineItem, len(p.Items))
	copy(items, p.Items)

	var subtotal kernel.Money
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}
	fee := DeliveryFee(subtotal, p.DeliveryFeeOverride)

	o := &Order{
		id:              p.ID,
		userID:          p.UserID,
		items:           items,
		shippingAddress: p.ShippingAddress,
		subtotal:        subtotal,
		deliveryFee:     fee,
		total:           subtotal.Add(fee),
		paymentMethod:   p.PaymentMethod,
		paymentStatus:   p.PaymentMethod.InitialPaymentStatus(),
		paymentMeta:     NewPaymentMeta(strings.TrimSpace(p.TransactionNote), nil, nil),
		status:          StatusPending,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	o.raise(PlacedEvent{
		ID:            kernel.NewUUID(),
		OrderID:       o.id,
		UserID:        o.userID,
		Total:         o.total,
		PaymentMethod: o.paymentMethod,
		PaymentStatus: o.paymentStatus,
		Items:         len(o.items),
		At:            now,
	})

	return o, nil
}

// State is the persisted form of an order used by RestoreOrder.
type State struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Items           []LineItem
	ShippingAddress ShippingAddress
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	PaymentMeta     PaymentMeta
	Status          Status
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder rebuilds an order from storage without recomputing totals or raising events.
func RestoreOrder(s State) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.UserID.Validate(),
		s.PaymentMethod.Validate(),
		s.PaymentStatus.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(s.Items) == 0 {
		return nil, ErrEmptyItems
	}

	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	return &Order{
		id:              s.ID,
		userID:          s.UserID,
		items:           items,
		shippingAddress: s.ShippingAddress,
		subtotal:        s.Subtotal,
		deliveryFee:     s.DeliveryFee,
		total:           s.Total,
		paymentMethod:   s.PaymentMethod,
		paymentStatus:   s.PaymentStatus,
		paymentMeta:     s.PaymentMeta,
		status:          s.Status,
		version:         s.Version,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		isConstructed:   true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the line items in placement order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) ShippingAddress() ShippingAddress {
	return o.shippingAddress
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaymentMeta() PaymentMeta {
	return o.paymentMeta
}

func (o *Order) Status() Status {
	return o.status
}

// Version is the optimistic concurrency counter of the stored row this order
// mirrors.
func (o *Order) Version() int {
	return o.version
}

// MarkStored advances the version after the repository wrote a new revision,
// so the same aggregate can be updated again.
func (o *Order) MarkStored() {
	o.version++
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Update is an administrative change request. Nil fields are not touched.
type Update struct {
	Status          *Status
	PaymentStatus   *PaymentStatus
	TransactionNote *string
}

func (u Update) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.TransactionNote == nil
}

// ApplyUpdate performs a status transition on behalf of an administrator.
//
// Any state may move to any other state. Setting the payment to Paid stamps
// the verifier and time and, unless the same update names an order status,
// advances a Pending order to Confirmed. Any other payment status clears the
// verification. A supplied note replaces the stored one after trimming.
func (o *Order) ApplyUpdate(u Update, by kernel.UUID, now time.Time) error {
	if u.IsEmpty() {
		return ErrNoUpdateFields
	}
	if err := by.Validate(); err != nil {
		return err
	}
	if u.Status != nil {
		if err := u.Status.Validate(); err != nil {
			return err
		}
	}
	if u.PaymentStatus != nil {
		if err := u.PaymentStatus.Validate(); err != nil {
			return err
		}
	}

	if u.Status != nil {
		o.status = *u.Status
	}

	if u.PaymentStatus != nil {
		o.paymentStatus = *u.PaymentStatus
		if o.paymentStatus == PaymentPaid {
			o.paymentMeta = o.paymentMeta.verified(by, now)
			if u.Status == nil && o.status == StatusPending {
				o.status = StatusConfirmed
			}
		} else {
			o.paymentMeta = o.paymentMeta.unverified()
		}
	}

	if u.TransactionNote != nil {
		o.paymentMeta.transactionNote = strings.TrimSpace(*u.TransactionNote)
	}

	o.updatedAt = now
	o.raise(UpdatedEvent{
		ID:            kernel.NewUUID(),
		OrderID:       o.id,
		UserID:        o.userID,
		OrderStatus:   o.status,
		PaymentStatus: o.paymentStatus,
		UpdatedBy:     by,
		At:            now,
	})

	return nil
}

// DomainEvents returns the events recorded since the order was loaded or last cleared.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(e Event) {
	o.events = append(o.events, e)
}
