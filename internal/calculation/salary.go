package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// SalaryCalculator aggregates cash salary components and the salary-head
// exemptions available under the old regime.
type SalaryCalculator struct {
	Exemptions domain.ExemptionConfig
}

// NewSalaryCalculator creates a salary calculator from statutory config
func NewSalaryCalculator(exemptions domain.ExemptionConfig) *SalaryCalculator {
	return &SalaryCalculator{Exemptions: exemptions}
}

// GrossSalary sums every declared cash component.
func (sc *SalaryCalculator) GrossSalary(s *domain.SalaryIncome) decimal.Money {
	return decimal.Sum(
		s.BasicPay,
		s.DearnessAllowance,
		s.HouseRentAllowance,
		s.SpecialAllowance,
		s.ConveyanceAllowance,
		s.Bonus,
		s.Commission,
		s.OtherAllowances,
	)
}

// HRAExemption is the least of actual HRA received, rent paid less 10% of
// basic+DA, and 50% (metro) or 40% (non-metro) of basic+DA. Available only
// under the old regime.
func (sc *SalaryCalculator) HRAExemption(s *domain.SalaryIncome, regime domain.TaxRegime, ctx *domain.TaxpayerContext) decimal.Money {
	if regime.IsNew() {
		return decimal.Zero()
	}
	if s.HouseRentAllowance.IsZero() || s.RentPaid.IsZero() {
		return decimal.Zero()
	}

	basicDA := s.BasicPlusDA()
	rentOverTenPct := s.RentPaid.Sub(basicDA.Percent(10)).NonNegative()

	pct := sc.Exemptions.HRANonMetroPct
	if ctx.LivesInMetroCity {
		pct = sc.Exemptions.HRAMetroPct
	}

	return decimal.MinOf(s.HouseRentAllowance, rentOverTenPct, basicDA.Percent(pct))
}

// TaxableSalary is gross salary net of the HRA exemption. The standard
// deduction and professional tax are applied at the engine level so they
// appear on the breakdown as deductions.
func (sc *SalaryCalculator) TaxableSalary(s *domain.SalaryIncome, regime domain.TaxRegime, ctx *domain.TaxpayerContext) decimal.Money {
	return sc.GrossSalary(s).Sub(sc.HRAExemption(s, regime, ctx)).NonNegative()
}
