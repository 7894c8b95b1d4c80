package order

import (
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrInvalidPaymentStatus = errs.NewValueIsInvalidError("paymentStatus")
	ErrInvalidPaymentMethod = errs.NewValueIsInvalidError("paymentMethod")
)

// PaymentMethod is how the customer pays. It never changes after placement.
type PaymentMethod int

const (
	MethodUnknown PaymentMethod = iota
	MethodCOD
	MethodUPI
)

// PaymentMethodFromSelector turns the checkout selector into a method:
// exactly "UPI" selects UPI, anything else is cash on delivery.
func PaymentMethodFromSelector(selector string) PaymentMethod {
	if selector == "UPI" {
		return MethodUPI
	}
	return MethodCOD
}

func (m PaymentMethod) Validate() error {
	if m != MethodCOD && m != MethodUPI {
		return fmt.Errorf("%w: %d is not a valid payment method", ErrInvalidPaymentMethod, m)
	}
	return nil
}

func (m PaymentMethod) String() string {
	switch m {
	case MethodCOD:
		return "COD"
	case MethodUPI:
		return "UPI"
	default:
		return "Unknown"
	}
}

// InitialPaymentStatus is Pending Verification for UPI (the customer claims to
// have paid) and Pending for cash on delivery.
func (m PaymentMethod) InitialPaymentStatus() PaymentStatus {
	if m == MethodUPI {
		return PaymentPendingVerification
	}
	return PaymentPending
}

// PaymentStatus tracks the money side of an order independently of fulfilment.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPendingVerification
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:             "Pending",
	PaymentPendingVerification: "Pending Verification",
	PaymentPaid:                "Paid",
	PaymentFailed:              "Failed",
	PaymentRefunded:            "Refunded",
}

// PaymentStatuses lists the valid payment states.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentPending,
		PaymentPendingVerification,
		PaymentPaid,
		PaymentFailed,
		PaymentRefunded,
	}
}

// ParsePaymentStatus maps the wire name, or its compact spelling, to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if matchesName(s, name) {
			return status, nil
		}
	}
	return PaymentUnknown, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid payment status", ErrInvalidPaymentStatus, s)
	}
	return nil
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// PaymentMeta records the customer's transaction note and who verified the payment.
// VerifiedAt and VerifiedBy are set together, only while the payment is Paid.
type PaymentMeta struct {
	transactionNote string
	verifiedAt      *time.Time
	verifiedBy      *kernel.UUID
}

func NewPaymentMeta(transactionNote string, verifiedAt *time.Time, verifiedBy *kernel.UUID) PaymentMeta {
	return PaymentMeta{
		transactionNote: transactionNote,
		verifiedAt:      verifiedAt,
		verifiedBy:      verifiedBy,
	}
}

func (p PaymentMeta) TransactionNote() string {
	return p.transactionNote
}

func (p PaymentMeta) VerifiedAt() *time.Time {
	return p.verifiedAt
}

func (p PaymentMeta) VerifiedBy() *kernel.UUID {
	return p.verifiedBy
}

func (p PaymentMeta) IsVerified() bool {
	return p.verifiedAt != nil && p.verifiedBy != nil
}

func (p PaymentMeta) verified(by kernel.UUID, at time.Time) PaymentMeta {
	p.verifiedAt = &at
	p.verifiedBy = &by
	return p
}

func (p PaymentMeta) unverified() PaymentMeta {
	p.verifiedAt = nil
	p.verifiedBy = nil
	return p
}
