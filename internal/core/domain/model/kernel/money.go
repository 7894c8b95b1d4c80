package kernel

import (
	"errors"

	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is the cause attached when a monetary amount is below zero.
var ErrNegativeAmount = errors.New("amount must not be negative")

// Money is a non-negative amount in the store currency (INR), kept as a decimal
// so that prices and totals never pick up floating point drift.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal amount, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeErrorWithCause("amount", amount.String(), 0, "unbounded", ErrNegativeAmount)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat converts a JSON number into Money, rounded to paise.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount).Round(2))
}

// MoneyFromInt builds a whole-rupee amount. Negative input is clamped to zero.
func MoneyFromInt(amount int64) Money {
	if amount < 0 {
		return Money{}
	}
	return Money{amount: decimal.NewFromInt(amount)}
}

// ClampedMoney converts any decimal into Money, treating negative amounts as zero.
func ClampedMoney(amount decimal.Decimal) Money {
	if amount.IsNegative() {
		return Money{}
	}
	return Money{amount: amount}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies the amount by a quantity. Non-positive quantities yield zero.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is used only at the JSON boundary.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
