package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// ErrInvalidOrderStatus is returned for any value outside the six fulfilment states.
var ErrInvalidOrderStatus = errs.NewValueIsInvalidError("orderStatus")

// Status is the fulfilment state of an order.
//
//	Pending -> Confirmed -> Preparing -> Out for Delivery -> Delivered
//	                \-> Cancelled
//
// The arrows show the usual flow only. Administrators may move an order
// between any two states, including from Delivered back to Pending.
type Status int

const (
	// StatusUnknown (0) catches uninitialised values.
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusPreparing
	StatusOutForDelivery
	StatusDelivered
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPending:        "Pending",
	StatusConfirmed:      "Confirmed",
	StatusPreparing:      "Preparing",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusCancelled:      "Cancelled",
}

// Statuses lists the valid states in workflow order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// ParseStatus maps the wire name to a Status. Matching is exact, except that
// the compact spelling without spaces is accepted too ("OutForDelivery").
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if matchesName(s, name) {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, s)
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid order status", ErrInvalidOrderStatus, s)
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func matchesName(s, name string) bool {
	return s == name || s == strings.ReplaceAll(name, " ", "")
}
