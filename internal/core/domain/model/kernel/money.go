package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary value object with two decimal places.
// It backs product prices, order totals, and payment amounts, and prevents
// the rounding drift that float arithmetic would introduce into revenue
// rollups.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// a valid zero amount, so Money can be embedded without a constructor guard.
// Negative amounts are rejected at construction.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	total := price.MulInt(3) // 30.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal, rounding to two decimal places.
// Returns an error for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a decimal string such as "10.00" into Money.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MulInt multiplies the amount by a non-negative integer factor.
// Used to derive an order total from unit price and quantity.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))).Round(2)}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two decimal places, e.g. "30.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
