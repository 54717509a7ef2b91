package domain

import (
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// Deduction section codes recognised by the deduction engine.
const (
	Section80C    = "80C"    // life insurance, PPF, ELSS and similar investments
	Section80CCC  = "80CCC"  // pension fund contributions
	Section80CCD1 = "80CCD1" // employee NPS contribution
	Section80CCD1B = "80CCD1B" // additional NPS contribution
	Section80CCD2 = "80CCD2" // employer NPS contribution
	Section80D    = "80D"    // health insurance premium
	Section80DD   = "80DD"   // dependent with disability
	Section80DDB  = "80DDB"  // specified disease treatment
	Section80E    = "80E"    // education loan interest
	Section80EEA  = "80EEA"  // affordable housing loan interest
	Section80G    = "80G"    // charitable donations
	Section80GG   = "80GG"   // rent paid without HRA
	Section80TTA  = "80TTA"  // savings interest, below senior age
	Section80TTB  = "80TTB"  // bank interest, senior citizens
	Section80U    = "80U"    // self disability
)

// DeductionSet maps a deduction section code to the claimed amount.
// Claims are validated against the regime and per-section caps by the
// deduction engine; the set itself is plain declared data.
type DeductionSet map[string]decimal.Money

// Claimed returns the claimed amount for a section, zero when absent.
func (d DeductionSet) Claimed(section string) decimal.Money {
	if d == nil {
		return decimal.Zero()
	}
	if amt, ok := d[section]; ok {
		return amt
	}
	return decimal.Zero()
}
