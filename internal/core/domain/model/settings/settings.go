package settings

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/pkg/errs"
)

// Key identifies the single settings record.
const Key = "global"

// DefaultInstructions is shown to customers until an administrator changes it.
const DefaultInstructions = "Pay using UPI, then click 'I have completed payment'. Your order will be verified by our team."

var (
	ErrSettingsIsNotConstructed = errors.New("Settings must be created via Default or RestoreSettings")

	// ErrPaymentMethodUnavailable is returned when a customer picks UPI while it is switched off.
	ErrPaymentMethodUnavailable = errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", errors.New("UPI payments are currently disabled"),
	)
)

// UPI holds the payment details customers see at checkout.
type UPI struct {
	enabled      bool
	upiID        string
	phone        string
	qrImage      string
	instructions string
}

func (u UPI) Enabled() bool {
	return u.enabled
}

func (u UPI) UPIID() string {
	return u.upiID
}

func (u UPI) Phone() string {
	return u.phone
}

func (u UPI) QRImage() string {
	return u.qrImage
}

func (u UPI) Instructions() string {
	return u.instructions
}


// Settings is the store-wide configuration singleton.
type Settings struct {
	upi       UPI
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Default returns the settings a fresh store starts with: UPI enabled, no
// payee details and the stock instructions text.
func Default(now time.Time) *Settings {
	return &Settings{
		upi: UPI{
			enabled:      true,
			instructions: DefaultInstructions,
		},
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
}

// RestoreSettings rebuilds the singleton from persisted state.
func RestoreSettings(
	enabled bool,
	upiID, phone, qrImage, instructions string,
	createdAt, updatedAt time.Time,
) *Settings {
	return &Settings{
		upi: UPI{
			enabled:      enabled,
			upiID:        upiID,
			phone:        phone,
			qrImage:      qrImage,
			instructions: instructions,
		},
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

func (s *Settings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingsIsNotConstructed
	}
	return nil
}

func (s *Settings) UPI() UPI {
	return s.upi
}

func (s *Settings) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Settings) UpdatedAt() time.Time {
	return s.updatedAt
}

// EnsureUPIAvailable returns ErrPaymentMethodUnavailable when UPI is disabled.
func (s *Settings) EnsureUPIAvailable() error {
	if !s.upi.enabled {
		return ErrPaymentMethodUnavailable
	}
	return nil
}

// UPIChanges lists the UPI fields to overwrite. Strings are stored trimmed and may be blank.
type UPIChanges struct {
	Enabled      *bool
	UPIID        *string
	Phone        *string
	QRImage      *string
	Instructions *string
}

func (c UPIChanges) IsEmpty() bool {
	return c.Enabled == nil && c.UPIID == nil && c.Phone == nil && c.QRImage == nil && c.Instructions == nil
}

func (s *Settings) UpdateUPI(c UPIChanges, now time.Time) {
	if c.Enabled != nil {
		s.upi.enabled = *c.Enabled
	}
	if c.UPIID != nil {
		s.upi.upiID = strings.TrimSpace(*c.UPIID)
	}
	if c.Phone != nil {
		s.upi.phone = strings.TrimSpace(*c.Phone)
	}
	if c.QRImage != nil {
		s.upi.qrImage = strings.TrimSpace(*c.QRImage)
	}
	if c.Instructions != nil {
		s.upi.instructions = strings.TrimSpace(*c.Instructions)
	}
	s.updatedAt = now
}
