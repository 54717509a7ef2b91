package domain

import (
	"time"

	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// CapitalGainsDetail retains the per-bucket audit trail of the special-rate
// computation. The 112A exemption applies only inside its own bucket.
type CapitalGainsDetail struct {
	STCG111A        decimal.Money `json:"stcg_111a" yaml:"stcg_111a"`
	STCG111ATax     decimal.Money `json:"stcg_111a_tax" yaml:"stcg_111a_tax"`
	STCGOther       decimal.Money `json:"stcg_other" yaml:"stcg_other"` // taxed at slab rates, not here
	LTCG112A        decimal.Money `json:"ltcg_112a" yaml:"ltcg_112a"`
	LTCG112AExempt  decimal.Money `json:"ltcg_112a_exempt" yaml:"ltcg_112a_exempt"`
	LTCG112ATaxable decimal.Money `json:"ltcg_112a_taxable" yaml:"ltcg_112a_taxable"`
	LTCG112ATax     decimal.Money `json:"ltcg_112a_tax" yaml:"ltcg_112a_tax"`
	LTCGOther       decimal.Money `json:"ltcg_other" yaml:"ltcg_other"`
	LTCGOtherTax    decimal.Money `json:"ltcg_other_tax" yaml:"ltcg_other_tax"`
}

// TotalTax is the special-rate capital-gains tax across all buckets.
func (d CapitalGainsDetail) TotalTax() decimal.Money {
	return decimal.Sum(d.STCG111ATax, d.LTCG112ATax, d.LTCGOtherTax)
}

// BreakdownDetails exposes every pre-pipeline aggregate for audit.
type BreakdownDetails struct {
	GrossSalary      decimal.Money      `json:"gross_salary" yaml:"gross_salary"`
	SalaryExemptions decimal.Money      `json:"salary_exemptions" yaml:"salary_exemptions"`
	PerquisiteValue  decimal.Money      `json:"perquisite_value" yaml:"perquisite_value"`
	RetirementBenefitsTaxable decimal.Money `json:"retirement_benefits_taxable" yaml:"retirement_benefits_taxable"`
	OtherSources     decimal.Money      `json:"other_sources" yaml:"other_sources"`
	HouseProperty    decimal.Money      `json:"house_property" yaml:"house_property"`
	RegularIncome    decimal.Money      `json:"regular_income" yaml:"regular_income"`
	CapitalGains     CapitalGainsDetail `json:"capital_gains" yaml:"capital_gains"`
	GrossIncome      decimal.Money      `json:"gross_income" yaml:"gross_income"`
	TotalDeductions  decimal.Money      `json:"total_deductions" yaml:"total_deductions"`
	NetIncome        decimal.Money      `json:"net_income" yaml:"net_income"`
}

// TaxBreakdown is the engine output: final liability plus every statutory
// stage. A new calculation always produces a new breakdown; identical inputs
// reproduce an identical one.
type TaxBreakdown struct {
	EmployeeID string    `json:"employee_id" yaml:"employee_id"`
	FiscalYear string    `json:"fiscal_year" yaml:"fiscal_year"`
	Regime     TaxRegime `json:"regime" yaml:"regime"`

	SlabTax         decimal.Money `json:"slab_tax" yaml:"slab_tax"`
	CapitalGainsTax decimal.Money `json:"capital_gains_tax" yaml:"capital_gains_tax"`
	BaseTax         decimal.Money `json:"base_tax" yaml:"base_tax"`
	Rebate          decimal.Money `json:"rebate" yaml:"rebate"`
	TaxAfterRebate  decimal.Money `json:"tax_after_rebate" yaml:"tax_after_rebate"`
	Surcharge       decimal.Money `json:"surcharge" yaml:"surcharge"`
	MarginalRelief  decimal.Money `json:"marginal_relief" yaml:"marginal_relief"`
	Cess            decimal.Money `json:"cess" yaml:"cess"`
	TotalTax        decimal.Money `json:"total_tax" yaml:"total_tax"`

	Details BreakdownDetails `json:"details" yaml:"details"`
}

// MonthlySalaryProjection is the prorated payout for one employee-month.
// It is recomputed from scratch whenever the underlying annual data or
// attendance changes, never patched.
type MonthlySalaryProjection struct {
	EmployeeID string `json:"employee_id" yaml:"employee_id"`
	Month      int    `json:"month" yaml:"month"`
	Year       int    `json:"year" yaml:"year"`

	PeriodStart time.Time `json:"period_start" yaml:"period_start"`
	PeriodEnd   time.Time `json:"period_end" yaml:"period_end"`
	DaysInMonth int       `json:"days_in_month" yaml:"days_in_month"`
	PeriodDays  int       `json:"period_days" yaml:"period_days"`
	LWPDays     int       `json:"lwp_days" yaml:"lwp_days"`

	WorkingRatio decimal.Rate `json:"working_ratio" yaml:"working_ratio"`

	Basic           decimal.Money `json:"basic" yaml:"basic"`
	DA              decimal.Money `json:"da" yaml:"da"`
	HRA             decimal.Money `json:"hra" yaml:"hra"`
	Allowances      decimal.Money `json:"allowances" yaml:"allowances"`
	Bonus           decimal.Money `json:"bonus" yaml:"bonus"`
	GrossPay        decimal.Money `json:"gross_pay" yaml:"gross_pay"`
	IncomeTax       decimal.Money `json:"income_tax" yaml:"income_tax"`
	EPF             decimal.Money `json:"epf" yaml:"epf"`
	ESI             decimal.Money `json:"esi" yaml:"esi"`
	ProfessionalTax decimal.Money `json:"professional_tax" yaml:"professional_tax"`
	TotalDeductions decimal.Money `json:"total_deductions" yaml:"total_deductions"`
	NetPay          decimal.Money `json:"net_pay" yaml:"net_pay"`
}
