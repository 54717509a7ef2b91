package decimal

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromInt creates a new Money instance from an int64
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to paise using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundRupee rounds the money amount to the nearest whole rupee
func (m Money) RoundRupee() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// MulInt multiplies by an integer factor
func (m Money) MulInt(factor int64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(factor))}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// DivInt divides by an integer factor
func (m Money) DivInt(factor int64) Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(factor))}
}

// Percent returns the given percentage of the amount, e.g. m.Percent(10) is 10%
func (m Money) Percent(p float64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromFloat(p)).Div(decimal.NewFromInt(100))}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// NonNegative clamps a negative amount to zero. Several statutory valuations
// clamp as a business rule, so the clamp lives here rather than at call sites.
func (m Money) NonNegative() Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// MinOf returns the minimum of one or more Money amounts
func MinOf(first Money, rest ...Money) Money {
	lowest := first
	for _, m := range rest {
		if m.LessThan(lowest) {
			lowest = m
		}
	}
	return lowest
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Sum adds up a series of Money amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, m := range amounts {
		total = total.Add(m)
	}
	return total
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with proper currency formatting
func (m Money) Format() string {
	return "₹" + m.String()
}

// UnmarshalYAML implements yaml.Unmarshaler so declared amounts parse from
// plain scalars in input files.
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (m Money) MarshalYAML() (interface{}, error) {
	return m.Decimal.String(), nil
}
