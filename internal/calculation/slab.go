package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// SlabCalculator applies progressive bracket rates to net taxable regular
// income. Bracket bounds and rates come from regime configuration; a new
// fiscal year changes the table, not this code.
type SlabCalculator struct {
	Slabs []domain.Slab
}

// NewSlabCalculator creates a slab calculator for a regime's bracket table
func NewSlabCalculator(slabs []domain.Slab) *SlabCalculator {
	return &SlabCalculator{Slabs: slabs}
}

// Calculate computes slab tax over the inclusive statutory bounds: for each
// bracket with income above its lower bound, tax accrues at
// rate × (min(upper, income) − lower + 1).
func (sc *SlabCalculator) Calculate(income decimal.Money) decimal.Money {
	if !income.IsPositive() {
		return decimal.Zero()
	}

	one := decimal.NewMoneyFromInt(1)
	tax := decimal.Zero()
	for _, slab := range sc.Slabs {
		if !income.GreaterThan(slab.Lower) {
			break
		}
		if slab.Rate.IsZero() {
			continue
		}
		span := decimal.Min(slab.Upper, income).Sub(slab.Lower).Add(one)
		tax = tax.Add(slab.Rate.ApplyTo(span))
	}
	return tax
}
