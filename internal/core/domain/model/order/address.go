package order

import (
	"errors"
	"strings"

	"bakery/internal/pkg/errs"
)

// ErrIncompleteAddress is the cause reported when a required address field is blank.
var ErrIncompleteAddress = errors.New("shipping address is incomplete")

// AddressFields is the raw shipping address as submitted at checkout.
type AddressFields struct {
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Notes      string
}

// ShippingAddress is a trimmed, complete delivery address. Line2 and Notes are optional.
type ShippingAddress struct {
	fullName   string
	phone      string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	notes      string
}

// NewShippingAddress trims every field and returns a ValueIsRequired error
// naming the first blank required field, checked in the order
// fullName, phone, line1, city, state, postalCode.
func NewShippingAddress(f AddressFields) (ShippingAddress, error) {
	a := ShippingAddress{
		fullName:   strings.TrimSpace(f.FullName),
		phone:      strings.TrimSpace(f.Phone),
		line1:      strings.TrimSpace(f.Line1),
		line2:      strings.TrimSpace(f.Line2),
		city:       strings.TrimSpace(f.City),
		state:      strings.TrimSpace(f.State),
		postalCode: strings.TrimSpace(f.PostalCode),
		notes:      strings.TrimSpace(f.Notes),
	}

	required := []struct {
		name  string
		value string
	}{
		{"fullName", a.fullName},
		{"phone", a.phone},
		{"line1", a.line1},
		{"city", a.city},
		{"state", a.state},
		{"postalCode", a.postalCode},
	}
	for _, field := range required {
		if field.value == "" {
			return ShippingAddress{}, errs.NewValueIsRequiredErrorWithCause(
				"shippingAddress."+field.name, ErrIncompleteAddress,
			)
		}
	}

	return a, nil
}

func (a ShippingAddress) FullName() string {
	return a.fullName
}

func (a ShippingAddress) Phone() string {
	return a.phone
}

func (a ShippingAddress) Line1() string {
	return a.line1
}

func (a ShippingAddress) Line2() string {
	return a.line2
}

func (a ShippingAddress) City() string {
	return a.city
}

func (a ShippingAddress) State() string {
	return a.state
}

func (a ShippingAddress) PostalCode() string {
	return a.postalCode
}

func (a ShippingAddress) Notes() string {
	return a.notes
}

// Fields returns the address in its raw form, e.g. for persistence.
func (a ShippingAddress) Fields() AddressFields {
	return AddressFields{
		FullName:   a.fullName,
		Phone:      a.phone,
		Line1:      a.line1,
		Line2:      a.line2,
		City:       a.city,
		State:      a.state,
		PostalCode: a.postalCode,
		Notes:      a.notes,
	}
}

// IsZero reports whether the address was never constructed.
func (a ShippingAddress) IsZero() bool {
	return a == ShippingAddress{}
}
