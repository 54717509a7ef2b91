package decimal

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rate represents a dimensionless factor such as a tax rate or a working
// ratio. Kept distinct from Money so rates never masquerade as amounts.
type Rate struct {
	decimal.Decimal
}

// NewRate creates a Rate from a float64
func NewRate(value float64) Rate {
	return Rate{decimal.NewFromFloat(value)}
}

// NewRateFromDecimal creates a Rate from a decimal.Decimal
func NewRateFromDecimal(d decimal.Decimal) Rate {
	return Rate{d}
}

// ZeroRate returns a zero Rate
func ZeroRate() Rate {
	return Rate{decimal.Zero}
}

// Sub subtracts another Rate
func (r Rate) Sub(other Rate) Rate {
	return Rate{r.Decimal.Sub(other.Decimal)}
}

// IsZero checks if the rate is zero
func (r Rate) IsZero() bool {
	return r.Decimal.IsZero()
}

// IsPositive checks if the rate is positive
func (r Rate) IsPositive() bool {
	return r.Decimal.IsPositive()
}

// ApplyTo multiplies an amount by the rate.
func (r Rate) ApplyTo(m Money) Money {
	return Money{m.Decimal.Mul(r.Decimal)}
}

// UnmarshalYAML implements yaml.Unmarshaler
func (r *Rate) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		r.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return err
	}
	r.Decimal = d
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (r Rate) MarshalYAML() (interface{}, error) {
	return r.Decimal.String(), nil
}
