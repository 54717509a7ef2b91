package domain

import (
	stddecimal "github.com/shopspring/decimal"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// STATUTORY RATE ASSUMPTIONS:
//
// Defaults encode FY 2024-25 values. Slab boundaries, rebate limits,
// surcharge bands, perquisite thresholds and payroll ceilings are all
// configuration so a new fiscal year is a data change, not a code change.

// Slab is one progressive bracket. Bounds are the statutory inclusive
// rupee bounds: the bracket covers [Lower, Upper].
type Slab struct {
	Lower decimal.Money      `yaml:"lower" json:"lower"`
	Upper decimal.Money      `yaml:"upper" json:"upper"`
	Rate  decimal.Rate `yaml:"rate" json:"rate"`
}

// SurchargeBand maps a net-income threshold to a surcharge rate. Bands must
// be ordered by ascending threshold; the highest crossed band applies.
type SurchargeBand struct {
	Threshold decimal.Money      `yaml:"threshold" json:"threshold"`
	Rate      decimal.Rate `yaml:"rate" json:"rate"`
}

// RegimeConfig carries the regime-specific rate tables.
type RegimeConfig struct {
	Slabs                 []Slab          `yaml:"slabs" json:"slabs"`
	RebateCap             decimal.Money   `yaml:"rebate_cap" json:"rebate_cap"`
	RebateIncomeThreshold decimal.Money   `yaml:"rebate_income_threshold" json:"rebate_income_threshold"`
	SurchargeBands        []SurchargeBand `yaml:"surcharge_bands" json:"surcharge_bands"`
	CessRate              decimal.Rate `yaml:"cess_rate" json:"cess_rate"`
	StandardDeduction     decimal.Money   `yaml:"standard_deduction" json:"standard_deduction"`
}

// PerquisiteConfig carries the perquisite valuation thresholds and rates.
type PerquisiteConfig struct {
	AccommodationPctTier1 float64 `yaml:"accommodation_pct_tier1" json:"accommodation_pct_tier1"`
	AccommodationPctTier2 float64 `yaml:"accommodation_pct_tier2" json:"accommodation_pct_tier2"`
	AccommodationPctTier3 float64 `yaml:"accommodation_pct_tier3" json:"accommodation_pct_tier3"`
	LeasedAccommodationPct float64 `yaml:"leased_accommodation_pct" json:"leased_accommodation_pct"`
	HotelPct              float64 `yaml:"hotel_pct" json:"hotel_pct"`
	HotelMinDays          int     `yaml:"hotel_min_days" json:"hotel_min_days"`
	FurnitureOwnedPct     float64 `yaml:"furniture_owned_pct" json:"furniture_owned_pct"`

	CarEngineCCThreshold   int           `yaml:"car_engine_cc_threshold" json:"car_engine_cc_threshold"`
	CarMonthlySmallReimb   decimal.Money `yaml:"car_monthly_small_reimb" json:"car_monthly_small_reimb"`
	CarMonthlyLargeReimb   decimal.Money `yaml:"car_monthly_large_reimb" json:"car_monthly_large_reimb"`
	CarMonthlySmallNoReimb decimal.Money `yaml:"car_monthly_small_no_reimb" json:"car_monthly_small_no_reimb"`
	CarMonthlyLargeNoReimb decimal.Money `yaml:"car_monthly_large_no_reimb" json:"car_monthly_large_no_reimb"`
	DriverMonthly          decimal.Money `yaml:"driver_monthly" json:"driver_monthly"`

	MedicalDomesticLimit      decimal.Money `yaml:"medical_domestic_limit" json:"medical_domestic_limit"`
	OverseasGrossSalaryLimit  decimal.Money `yaml:"overseas_gross_salary_limit" json:"overseas_gross_salary_limit"`

	LTAMaxClaims int `yaml:"lta_max_claims" json:"lta_max_claims"`

	LoanBenchmarkRate  decimal.Rate `yaml:"loan_benchmark_rate" json:"loan_benchmark_rate"` // SBI lending rate
	LoanPrincipalFloor decimal.Money      `yaml:"loan_principal_floor" json:"loan_principal_floor"`

	GiftVoucherCeiling       decimal.Money `yaml:"gift_voucher_ceiling" json:"gift_voucher_ceiling"`
	EducationPerChildMonthly decimal.Money `yaml:"education_per_child_monthly" json:"education_per_child_monthly"`
	LunchExemptPerMeal       decimal.Money `yaml:"lunch_exempt_per_meal" json:"lunch_exempt_per_meal"`
	AssetUsePctPerYear       float64       `yaml:"asset_use_pct_per_year" json:"asset_use_pct_per_year"`

	DepreciationComputerPct float64 `yaml:"depreciation_computer_pct" json:"depreciation_computer_pct"` // WDV
	DepreciationCarPct      float64 `yaml:"depreciation_car_pct" json:"depreciation_car_pct"`           // WDV
	DepreciationOtherPct    float64 `yaml:"depreciation_other_pct" json:"depreciation_other_pct"`       // straight line
}

// ExemptionConfig carries ceilings and factors for salary exemptions and
// one-off retirement receipts.
type ExemptionConfig struct {
	HRAMetroPct    float64 `yaml:"hra_metro_pct" json:"hra_metro_pct"`
	HRANonMetroPct float64 `yaml:"hra_non_metro_pct" json:"hra_non_metro_pct"`

	GratuityCap        decimal.Money      `yaml:"gratuity_cap" json:"gratuity_cap"`
	GratuityDaysFactor decimal.Rate `yaml:"gratuity_days_factor" json:"gratuity_days_factor"` // 15/26

	LeaveEncashmentCap      decimal.Money `yaml:"leave_encashment_cap" json:"leave_encashment_cap"`
	LeaveEncashmentMonths   int64         `yaml:"leave_encashment_months" json:"leave_encashment_months"`
	LeaveAccrualDaysPerYear int           `yaml:"leave_accrual_days_per_year" json:"leave_accrual_days_per_year"`

	VRSCap          decimal.Money `yaml:"vrs_cap" json:"vrs_cap"`
	RetrenchmentCap decimal.Money `yaml:"retrenchment_cap" json:"retrenchment_cap"`

	HousePropertyStdPct  float64       `yaml:"house_property_std_pct" json:"house_property_std_pct"`
	HouseLoanInterestCap decimal.Money `yaml:"house_loan_interest_cap" json:"house_loan_interest_cap"`

	SavingsInterestCap decimal.Money `yaml:"savings_interest_cap" json:"savings_interest_cap"` // 80TTA
	SeniorInterestCap  decimal.Money `yaml:"senior_interest_cap" json:"senior_interest_cap"`   // 80TTB
	SeniorAgeThreshold int           `yaml:"senior_age_threshold" json:"senior_age_threshold"`
}

// CapitalGainsConfig carries the special flat rates and the 112A exemption.
type CapitalGainsConfig struct {
	STCG111ARate   decimal.Rate `yaml:"stcg_111a_rate" json:"stcg_111a_rate"`
	LTCG112ARate   decimal.Rate `yaml:"ltcg_112a_rate" json:"ltcg_112a_rate"`
	LTCG112AExempt decimal.Money      `yaml:"ltcg_112a_exempt" json:"ltcg_112a_exempt"`
	LTCGOtherRate  decimal.Rate `yaml:"ltcg_other_rate" json:"ltcg_other_rate"`
}

// DeductionConfig carries per-section claim caps. A zero cap means the
// section is uncapped. NewRegimeAllowed lists the sections that survive the
// new regime.
type DeductionConfig struct {
	Caps             map[string]decimal.Money `yaml:"caps" json:"caps"`
	SeniorMedicalCap decimal.Money            `yaml:"senior_medical_cap" json:"senior_medical_cap"` // 80D cap at senior age
	NewRegimeAllowed []string                 `yaml:"new_regime_allowed" json:"new_regime_allowed"`
}

// PTSlab is one step of the monthly professional-tax table.
type PTSlab struct {
	GrossUpTo decimal.Money `yaml:"gross_up_to" json:"gross_up_to"` // zero = no upper bound
	Tax       decimal.Money `yaml:"tax" json:"tax"`
}

// PayrollConfig carries statutory payroll deduction rules applied to the
// prorated monthly gross.
type PayrollConfig struct {
	EPFEmployeeRate       decimal.Rate `yaml:"epf_employee_rate" json:"epf_employee_rate"`
	EPFWageCeilingMonthly decimal.Money      `yaml:"epf_wage_ceiling_monthly" json:"epf_wage_ceiling_monthly"`
	ESIEmployeeRate       decimal.Rate `yaml:"esi_employee_rate" json:"esi_employee_rate"`
	ESIGrossThreshold     decimal.Money      `yaml:"esi_gross_threshold" json:"esi_gross_threshold"`
	ProfessionalTaxSlabs  []PTSlab           `yaml:"professional_tax_slabs" json:"professional_tax_slabs"`
}

// StatutoryConfig is the complete rule-table set for one fiscal year,
// constructed once and injected into the engine.
type StatutoryConfig struct {
	FiscalYear   string             `yaml:"fiscal_year" json:"fiscal_year"`
	OldRegime    RegimeConfig       `yaml:"old_regime" json:"old_regime"`
	NewRegime    RegimeConfig       `yaml:"new_regime" json:"new_regime"`
	Perquisites  PerquisiteConfig   `yaml:"perquisites" json:"perquisites"`
	Exemptions   ExemptionConfig    `yaml:"exemptions" json:"exemptions"`
	CapitalGains CapitalGainsConfig `yaml:"capital_gains" json:"capital_gains"`
	Deductions   DeductionConfig    `yaml:"deductions" json:"deductions"`
	Payroll      PayrollConfig      `yaml:"payroll" json:"payroll"`
}

// Regime returns the rate tables for the given regime.
func (sc *StatutoryConfig) Regime(r TaxRegime) RegimeConfig {
	if r.IsNew() {
		return sc.NewRegime
	}
	return sc.OldRegime
}

// DefaultStatutoryConfig returns the FY 2024-25 statutory tables.
func DefaultStatutoryConfig() *StatutoryConfig {
	rupees := decimal.NewMoneyFromInt
	rate := decimal.NewRate
	unbounded := rupees(999999999999)

	return &StatutoryConfig{
		FiscalYear: "2024-25",
		OldRegime: RegimeConfig{
			Slabs: []Slab{
				{rupees(0), rupees(250000), rate(0)},
				{rupees(250001), rupees(500000), rate(0.05)},
				{rupees(500001), rupees(1000000), rate(0.20)},
				{rupees(1000001), unbounded, rate(0.30)},
			},
			RebateCap:             rupees(12500),
			RebateIncomeThreshold: rupees(500000),
			SurchargeBands: []SurchargeBand{
				{rupees(5000000), rate(0.10)},
				{rupees(10000000), rate(0.15)},
				{rupees(20000000), rate(0.25)},
				{rupees(50000000), rate(0.37)},
			},
			CessRate:          rate(0.04),
			StandardDeduction: rupees(50000),
		},
		NewRegime: RegimeConfig{
			Slabs: []Slab{
				{rupees(0), rupees(300000), rate(0)},
				{rupees(300001), rupees(700000), rate(0.05)},
				{rupees(700001), rupees(1000000), rate(0.10)},
				{rupees(1000001), rupees(1200000), rate(0.15)},
				{rupees(1200001), rupees(1500000), rate(0.20)},
				{rupees(1500001), unbounded, rate(0.30)},
			},
			RebateCap:             rupees(25000),
			RebateIncomeThreshold: rupees(700000),
			// Surcharge is capped at 25% under the new regime.
			SurchargeBands: []SurchargeBand{
				{rupees(5000000), rate(0.10)},
				{rupees(10000000), rate(0.15)},
				{rupees(20000000), rate(0.25)},
			},
			CessRate:          rate(0.04),
			StandardDeduction: rupees(75000),
		},
		Perquisites: PerquisiteConfig{
			AccommodationPctTier1:  10,
			AccommodationPctTier2:  7.5,
			AccommodationPctTier3:  5,
			LeasedAccommodationPct: 10,
			HotelPct:               24,
			HotelMinDays:           15,
			FurnitureOwnedPct:      10,

			CarEngineCCThreshold:   1600,
			CarMonthlySmallReimb:   rupees(1800),
			CarMonthlyLargeReimb:   rupees(2400),
			CarMonthlySmallNoReimb: rupees(600),
			CarMonthlyLargeNoReimb: rupees(900),
			DriverMonthly:          rupees(900),

			MedicalDomesticLimit:     rupees(15000),
			OverseasGrossSalaryLimit: rupees(200000),

			LTAMaxClaims: 2,

			LoanBenchmarkRate:  rate(0.0865),
			LoanPrincipalFloor: rupees(20000),

			GiftVoucherCeiling:       rupees(5000),
			EducationPerChildMonthly: rupees(1000),
			LunchExemptPerMeal:       rupees(50),
			AssetUsePctPerYear:       10,

			DepreciationComputerPct: 50,
			DepreciationCarPct:      20,
			DepreciationOtherPct:    10,
		},
		Exemptions: ExemptionConfig{
			HRAMetroPct:    50,
			HRANonMetroPct: 40,

			GratuityCap:        rupees(2000000),
			GratuityDaysFactor: decimal.NewRateFromDecimal(stddecimal.NewFromInt(15).Div(stddecimal.NewFromInt(26))),

			LeaveEncashmentCap:      rupees(2500000),
			LeaveEncashmentMonths:   10,
			LeaveAccrualDaysPerYear: 30,

			VRSCap:          rupees(500000),
			RetrenchmentCap: rupees(500000),

			HousePropertyStdPct:  30,
			HouseLoanInterestCap: rupees(200000),

			SavingsInterestCap: rupees(10000),
			SeniorInterestCap:  rupees(50000),
			SeniorAgeThreshold: 60,
		},
		CapitalGains: CapitalGainsConfig{
			STCG111ARate:   rate(0.20),
			LTCG112ARate:   rate(0.125),
			LTCG112AExempt: rupees(125000),
			LTCGOtherRate:  rate(0.125),
		},
		Deductions: DeductionConfig{
			Caps: map[string]decimal.Money{
				Section80C:    rupees(150000),
				Section80CCC:  rupees(150000),
				Section80CCD1: rupees(150000),
				Section80CCD1B: rupees(50000),
				Section80CCD2: rupees(0), // capped as % of salary by the employer, not here
				Section80D:    rupees(25000),
				Section80DD:   rupees(75000),
				Section80DDB:  rupees(40000),
				Section80E:    rupees(0),
				Section80EEA:  rupees(150000),
				Section80G:    rupees(0),
				Section80GG:   rupees(60000),
				Section80U:    rupees(75000),
			},
			SeniorMedicalCap: rupees(50000),
			NewRegimeAllowed: []string{Section80CCD2},
		},
		Payroll: PayrollConfig{
			EPFEmployeeRate:       rate(0.12),
			EPFWageCeilingMonthly: rupees(15000),
			ESIEmployeeRate:       rate(0.0075),
			ESIGrossThreshold:     rupees(21000),
			ProfessionalTaxSlabs: []PTSlab{
				{rupees(7500), rupees(0)},
				{rupees(10000), rupees(175)},
				{rupees(0), rupees(200)},
			},
		},
	}
}
