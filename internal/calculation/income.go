package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// IncomeCalculator values the non-salary recurring heads: other sources
// and house property.
type IncomeCalculator struct {
	Config domain.ExemptionConfig
}

// NewIncomeCalculator creates an income calculator from statutory config
func NewIncomeCalculator(config domain.ExemptionConfig) *IncomeCalculator {
	return &IncomeCalculator{Config: config}
}

// OtherSources sums all income from other sources before the interest
// deduction, which the deduction engine handles so it shows up on the
// breakdown under its section.
func (ic *IncomeCalculator) OtherSources(o *domain.OtherSourcesIncome) decimal.Money {
	return decimal.Sum(
		o.SavingsInterest,
		o.FixedDepositInterest,
		o.RecurringDepositInterest,
		o.Dividend,
		o.BusinessIncome,
		o.OtherIncome,
	)
}

// HouseProperty computes income from house property: net annual value less
// the standard percentage deduction, less home-loan interest. Self-occupied
// property has no annual value and its loan interest is allowed only under
// the old regime, capped. A net loss offsets other income only up to the
// same cap.
func (ic *IncomeCalculator) HouseProperty(h *domain.HousePropertyIncome, regime domain.TaxRegime) decimal.Money {
	interestCap := ic.Config.HouseLoanInterestCap

	if h.SelfOccupied {
		if regime.IsNew() {
			return decimal.Zero()
		}
		interest := decimal.Min(h.HomeLoanInterest, interestCap)
		// Loss capped at the interest ceiling.
		return decimal.Zero().Sub(interest)
	}

	if h.AnnualRent.IsZero() {
		return decimal.Zero()
	}

	netAnnualValue := h.AnnualRent.Sub(h.MunicipalTaxes).NonNegative()
	income := netAnnualValue.Sub(netAnnualValue.Percent(ic.Config.HousePropertyStdPct))
	income = income.Sub(h.HomeLoanInterest)

	// A let-out loss sets off against other heads only up to the cap.
	if income.IsNegative() {
		return decimal.Max(income, decimal.Zero().Sub(interestCap))
	}
	return income
}
