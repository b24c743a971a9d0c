package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every persisted price carries.
const MoneyScale = 2

// Money represents a monetary value with exact decimal arithmetic.
// It uses decimal.Decimal internally to avoid floating-point drift.
// Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100.00", "0.01"
func NewMoneyFromDecimal(text string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return Money{}, fmt.Errorf("invalid decimal format: %q", text)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat creates Money from the shortest decimal representation of f,
// so 10.005 becomes exactly 10.005 rather than its binary approximation.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// ParseMoneyOrZero parses a stored decimal text. Empty or unparsable text reads as zero.
func ParseMoneyOrZero(text string) Money {
	m, err := NewMoneyFromDecimal(text)
	if err != nil {
		return Zero()
	}
	return m
}

// Zero returns a Money instance representing zero.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Add returns a new Money that is the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Multiply returns a new Money that is the product of m and other.
func (m Money) Multiply(other Money) Money {
	return Money{amount: m.amount.Mul(other.amount)}
}

// Round2 rounds to two fractional digits, half away from zero.
// 30.015 -> 30.02, -30.015 -> -30.02.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(MoneyScale)}
}

// IsZero returns true if the money amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the money amount is negative.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals returns true if m equals other, ignoring trailing zeros.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the money amount as a float64.
// Note: This may lose precision and should only be used for display purposes.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with exactly two fractional digits, e.g. "27.50".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// FloatString returns a decimal string representation with the specified precision.
func (m Money) FloatString(precision int32) string {
	return m.amount.StringFixed(precision)
}
