package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// DeductionCalculator aggregates every eligible deduction for the regime
// into a single deductible total. Claims are individually capped; the new
// regime keeps only the standard deduction and the sections listed in
// config.
type DeductionCalculator struct {
	Config     domain.DeductionConfig
	Exemptions domain.ExemptionConfig
}

// NewDeductionCalculator creates a deduction calculator from statutory config
func NewDeductionCalculator(config domain.DeductionConfig, exemptions domain.ExemptionConfig) *DeductionCalculator {
	return &DeductionCalculator{Config: config, Exemptions: exemptions}
}

// allowedInNewRegime reports whether a section survives the new regime.
func (dc *DeductionCalculator) allowedInNewRegime(section string) bool {
	for _, s := range dc.Config.NewRegimeAllowed {
		if s == section {
			return true
		}
	}
	return false
}

// cap returns the per-section claim ceiling, adjusting the health-insurance
// cap for senior citizens. A zero cap means uncapped.
func (dc *DeductionCalculator) cap(section string, ctx *domain.TaxpayerContext) decimal.Money {
	capAmt, ok := dc.Config.Caps[section]
	if !ok {
		return decimal.Zero()
	}
	if section == domain.Section80D && ctx.IsSeniorCitizen(dc.Exemptions.SeniorAgeThreshold) {
		return dc.Config.SeniorMedicalCap
	}
	return capAmt
}

// Capped applies the ceiling rule: deductible = min(claimed, cap).
func (dc *DeductionCalculator) Capped(section string, claimed decimal.Money, ctx *domain.TaxpayerContext) decimal.Money {
	if claimed.IsNegative() {
		return decimal.Zero()
	}
	capAmt := dc.cap(section, ctx)
	if capAmt.IsZero() {
		return claimed
	}
	return decimal.Min(claimed, capAmt)
}

// InterestDeduction computes the 80TTA/80TTB interest deduction from
// declared other-sources income. Below the senior age only savings-account
// interest qualifies, capped low; from the senior age all bank interest
// qualifies under the higher cap. Never available in the new regime.
func (dc *DeductionCalculator) InterestDeduction(o *domain.OtherSourcesIncome, regime domain.TaxRegime, ctx *domain.TaxpayerContext) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	if ctx.IsSeniorCitizen(dc.Exemptions.SeniorAgeThreshold) {
		allInterest := decimal.Sum(o.SavingsInterest, o.FixedDepositInterest, o.RecurringDepositInterest)
		return decimal.Min(allInterest, dc.Exemptions.SeniorInterestCap)
	}
	return decimal.Min(o.SavingsInterest, dc.Exemptions.SavingsInterestCap)
}

// Total aggregates all deductible amounts for the regime: every claimed
// section (capped), plus the interest deduction derived from declared
// income rather than a claim.
func (dc *DeductionCalculator) Total(set domain.DeductionSet, o *domain.OtherSourcesIncome, regime domain.TaxRegime, ctx *domain.TaxpayerContext) decimal.Money {
	total := decimal.Zero()
	for section, claimed := range set {
		// Interest sections are computed from income, not taken as claims.
		if section == domain.Section80TTA || section == domain.Section80TTB {
			continue
		}
		if regime.IsNew() && !dc.allowedInNewRegime(section) {
			continue
		}
		total = total.Add(dc.Capped(section, claimed, ctx))
	}
	return total.Add(dc.InterestDeduction(o, regime, ctx))
}
