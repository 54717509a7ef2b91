package domain

import (
	"fmt"
	"time"

	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// SalaryIncome holds the declared cash salary components for the year.
type SalaryIncome struct {
	BasicPay            decimal.Money `yaml:"basic_pay" json:"basic_pay"`
	DearnessAllowance   decimal.Money `yaml:"dearness_allowance,omitempty" json:"dearness_allowance,omitempty"`
	HouseRentAllowance  decimal.Money `yaml:"house_rent_allowance,omitempty" json:"house_rent_allowance,omitempty"`
	RentPaid            decimal.Money `yaml:"rent_paid,omitempty" json:"rent_paid,omitempty"`
	SpecialAllowance    decimal.Money `yaml:"special_allowance,omitempty" json:"special_allowance,omitempty"`
	ConveyanceAllowance decimal.Money `yaml:"conveyance_allowance,omitempty" json:"conveyance_allowance,omitempty"`
	Bonus               decimal.Money `yaml:"bonus,omitempty" json:"bonus,omitempty"`
	Commission          decimal.Money `yaml:"commission,omitempty" json:"commission,omitempty"`
	OtherAllowances     decimal.Money `yaml:"other_allowances,omitempty" json:"other_allowances,omitempty"`
	ProfessionalTaxPaid decimal.Money `yaml:"professional_tax_paid,omitempty" json:"professional_tax_paid,omitempty"`
}

// BasicPlusDA is the reference base several perquisite formulas are
// expressed against.
func (s *SalaryIncome) BasicPlusDA() decimal.Money {
	return s.BasicPay.Add(s.DearnessAllowance)
}

// AccommodationType distinguishes the four statutory accommodation
// valuation rules.
type AccommodationType string

const (
	AccommodationGovernment    AccommodationType = "government"
	AccommodationEmployerOwned AccommodationType = "employer_owned"
	AccommodationLeased        AccommodationType = "leased"
	AccommodationHotel         AccommodationType = "hotel"
)

// AccommodationPerk declares employer-provided accommodation.
type AccommodationPerk struct {
	Provided bool              `yaml:"provided" json:"provided"`
	Type     AccommodationType `yaml:"type,omitempty" json:"type,omitempty"`
	// CityPopulationTier is 1 for cities above 25 lakh, 2 for 10-25 lakh,
	// 3 below 10 lakh. Drives the employer-owned percentage.
	CityPopulationTier int           `yaml:"city_population_tier,omitempty" json:"city_population_tier,omitempty"`
	LicenseFee         decimal.Money `yaml:"license_fee,omitempty" json:"license_fee,omitempty"`
	RentPaidByEmployer decimal.Money `yaml:"rent_paid_by_employer,omitempty" json:"rent_paid_by_employer,omitempty"`
	EmployeeRent       decimal.Money `yaml:"employee_rent,omitempty" json:"employee_rent,omitempty"`
	HotelCharges       decimal.Money `yaml:"hotel_charges,omitempty" json:"hotel_charges,omitempty"`
	HotelDays          int           `yaml:"hotel_days,omitempty" json:"hotel_days,omitempty"`

	FurnitureProvided            bool          `yaml:"furniture_provided,omitempty" json:"furniture_provided,omitempty"`
	FurnitureOwnedByEmployer     bool          `yaml:"furniture_owned_by_employer,omitempty" json:"furniture_owned_by_employer,omitempty"`
	FurnitureCost                decimal.Money `yaml:"furniture_cost,omitempty" json:"furniture_cost,omitempty"`
	FurnitureHireCharges         decimal.Money `yaml:"furniture_hire_charges,omitempty" json:"furniture_hire_charges,omitempty"`
	EmployeeFurnitureContribution decimal.Money `yaml:"employee_furniture_contribution,omitempty" json:"employee_furniture_contribution,omitempty"`
}

// CarUsage distinguishes the three car perquisite cases.
type CarUsage string

const (
	CarBusinessOnly CarUsage = "business"
	CarPersonalOnly CarUsage = "personal"
	CarMixedUse     CarUsage = "mixed"
)

// CarPerk declares an employer-provided car.
type CarPerk struct {
	Provided bool     `yaml:"provided" json:"provided"`
	Usage    CarUsage `yaml:"usage,omitempty" json:"usage,omitempty"`
	EngineCC int      `yaml:"engine_cc,omitempty" json:"engine_cc,omitempty"`
	// EmployerCost is the full annual running cost borne by the employer,
	// used for the personal-use case.
	EmployerCost      decimal.Money `yaml:"employer_cost,omitempty" json:"employer_cost,omitempty"`
	Months            int           `yaml:"months,omitempty" json:"months,omitempty"`
	ExpensesReimbursed bool         `yaml:"expenses_reimbursed,omitempty" json:"expenses_reimbursed,omitempty"`
	DriverProvided    bool          `yaml:"driver_provided,omitempty" json:"driver_provided,omitempty"`
}

// MedicalPerk declares employer-funded medical treatment.
type MedicalPerk struct {
	DomesticAmount  decimal.Money `yaml:"domestic_amount,omitempty" json:"domestic_amount,omitempty"`
	OverseasMedical decimal.Money `yaml:"overseas_medical,omitempty" json:"overseas_medical,omitempty"`
	// OverseasMedicalPermitted is the portion of overseas treatment within
	// the RBI-permitted limit; only that portion is exempt.
	OverseasMedicalPermitted decimal.Money `yaml:"overseas_medical_permitted,omitempty" json:"overseas_medical_permitted,omitempty"`
	OverseasTravel           decimal.Money `yaml:"overseas_travel,omitempty" json:"overseas_travel,omitempty"`
}

// LTAPerk declares leave travel assistance.
type LTAPerk struct {
	AmountReceived decimal.Money `yaml:"amount_received,omitempty" json:"amount_received,omitempty"`
	// LowestFareCost is the economy/rail equivalent for the shortest route.
	LowestFareCost decimal.Money `yaml:"lowest_fare_cost,omitempty" json:"lowest_fare_cost,omitempty"`
	ClaimsInBlock  int           `yaml:"claims_in_block,omitempty" json:"claims_in_block,omitempty"`
}

// LoanPerk declares an interest-free or concessional employer loan.
type LoanPerk struct {
	Purpose      string        `yaml:"purpose,omitempty" json:"purpose,omitempty"`
	Principal    decimal.Money `yaml:"principal" json:"principal"`
	Outstanding  decimal.Money `yaml:"outstanding,omitempty" json:"outstanding,omitempty"`
	CompanyRate  decimal.Rate  `yaml:"company_rate,omitempty" json:"company_rate,omitempty"`
	Months       int           `yaml:"months,omitempty" json:"months,omitempty"`
	// MonthlyEMI, when set, switches valuation to a month-by-month
	// simulation against the amortization schedule.
	MonthlyEMI decimal.Money `yaml:"monthly_emi,omitempty" json:"monthly_emi,omitempty"`
}

// LoanPurposeMedical marks loans exempt regardless of size.
const LoanPurposeMedical = "medical"

// ESOPPerk declares shares exercised under an employee stock option plan.
type ESOPPerk struct {
	Shares         int64         `yaml:"shares,omitempty" json:"shares,omitempty"`
	ExercisePrice  decimal.Money `yaml:"exercise_price,omitempty" json:"exercise_price,omitempty"`
	AllotmentPrice decimal.Money `yaml:"allotment_price,omitempty" json:"allotment_price,omitempty"`
}

// AssetTransferPerk declares a movable asset sold to the employee below
// depreciated value.
type AssetTransferPerk struct {
	AssetType      string        `yaml:"asset_type,omitempty" json:"asset_type,omitempty"` // computer, car or other
	OriginalCost   decimal.Money `yaml:"original_cost,omitempty" json:"original_cost,omitempty"`
	YearsUsed      int           `yaml:"years_used,omitempty" json:"years_used,omitempty"`
	AmountRecovered decimal.Money `yaml:"amount_recovered,omitempty" json:"amount_recovered,omitempty"`
}

// Perquisites aggregates every declared non-cash benefit. Each sub-rule has
// its own valuation; all of them value to zero under the new regime.
type Perquisites struct {
	Accommodation AccommodationPerk  `yaml:"accommodation,omitempty" json:"accommodation,omitempty"`
	Car           CarPerk            `yaml:"car,omitempty" json:"car,omitempty"`
	Medical       MedicalPerk        `yaml:"medical,omitempty" json:"medical,omitempty"`
	LTA           LTAPerk            `yaml:"lta,omitempty" json:"lta,omitempty"`
	Loans         []LoanPerk         `yaml:"loans,omitempty" json:"loans,omitempty"`
	ESOP          ESOPPerk           `yaml:"esop,omitempty" json:"esop,omitempty"`
	AssetTransfer AssetTransferPerk  `yaml:"asset_transfer,omitempty" json:"asset_transfer,omitempty"`

	UtilityBills            decimal.Money `yaml:"utility_bills,omitempty" json:"utility_bills,omitempty"`
	UtilityRecovered        decimal.Money `yaml:"utility_recovered,omitempty" json:"utility_recovered,omitempty"`
	ChildrenEducationCost   decimal.Money `yaml:"children_education_cost,omitempty" json:"children_education_cost,omitempty"`
	ChildrenInSchool        int           `yaml:"children_in_school,omitempty" json:"children_in_school,omitempty"`
	EducationMonths         int           `yaml:"education_months,omitempty" json:"education_months,omitempty"`
	MovableAssetCost        decimal.Money `yaml:"movable_asset_cost,omitempty" json:"movable_asset_cost,omitempty"`
	MovableAssetMonths      int           `yaml:"movable_asset_months,omitempty" json:"movable_asset_months,omitempty"`
	GiftVouchers            decimal.Money `yaml:"gift_vouchers,omitempty" json:"gift_vouchers,omitempty"`
	ClubExpenses            decimal.Money `yaml:"club_expenses,omitempty" json:"club_expenses,omitempty"`
	ClubRecovered           decimal.Money `yaml:"club_recovered,omitempty" json:"club_recovered,omitempty"`
	MealsProvided           int64         `yaml:"meals_provided,omitempty" json:"meals_provided,omitempty"`
	CostPerMeal             decimal.Money `yaml:"cost_per_meal,omitempty" json:"cost_per_meal,omitempty"`
	DomesticServantSalary   decimal.Money `yaml:"domestic_servant_salary,omitempty" json:"domestic_servant_salary,omitempty"`
	DomesticServantRecovered decimal.Money `yaml:"domestic_servant_recovered,omitempty" json:"domestic_servant_recovered,omitempty"`
}

// OtherSourcesIncome holds non-salary recurring income. Savings-account
// interest is segregated from term-deposit interest because the interest
// exemption sections treat them differently by age.
type OtherSourcesIncome struct {
	SavingsInterest          decimal.Money `yaml:"savings_interest,omitempty" json:"savings_interest,omitempty"`
	FixedDepositInterest     decimal.Money `yaml:"fixed_deposit_interest,omitempty" json:"fixed_deposit_interest,omitempty"`
	RecurringDepositInterest decimal.Money `yaml:"recurring_deposit_interest,omitempty" json:"recurring_deposit_interest,omitempty"`
	Dividend                 decimal.Money `yaml:"dividend,omitempty" json:"dividend,omitempty"`
	BusinessIncome           decimal.Money `yaml:"business_income,omitempty" json:"business_income,omitempty"`
	OtherIncome              decimal.Money `yaml:"other_income,omitempty" json:"other_income,omitempty"`
}

// HousePropertyIncome holds rental or self-occupied property declarations.
type HousePropertyIncome struct {
	SelfOccupied     bool          `yaml:"self_occupied,omitempty" json:"self_occupied,omitempty"`
	AnnualRent       decimal.Money `yaml:"annual_rent,omitempty" json:"annual_rent,omitempty"`
	MunicipalTaxes   decimal.Money `yaml:"municipal_taxes,omitempty" json:"municipal_taxes,omitempty"`
	HomeLoanInterest decimal.Money `yaml:"home_loan_interest,omitempty" json:"home_loan_interest,omitempty"`
}

// CapitalGains holds the four statutory gain buckets. The 112A exemption is
// local to its bucket; only the non-equity short-term bucket flows into slab
// income.
type CapitalGains struct {
	STCGEquity111A decimal.Money `yaml:"stcg_equity_111a,omitempty" json:"stcg_equity_111a,omitempty"`
	STCGOther      decimal.Money `yaml:"stcg_other,omitempty" json:"stcg_other,omitempty"`
	LTCGEquity112A decimal.Money `yaml:"ltcg_equity_112a,omitempty" json:"ltcg_equity_112a,omitempty"`
	LTCGOther      decimal.Money `yaml:"ltcg_other,omitempty" json:"ltcg_other,omitempty"`
}

// Gratuity declares a gratuity receipt on retirement or separation.
// ClaimGovernmentExemption asserts the full government exemption; it must
// agree with the taxpayer context flag.
type Gratuity struct {
	Amount                    decimal.Money `yaml:"amount" json:"amount"`
	ClaimGovernmentExemption bool          `yaml:"claim_government_exemption,omitempty" json:"claim_government_exemption,omitempty"`
}

// LeaveEncashment declares an encashment of unused earned leave.
type LeaveEncashment struct {
	Amount          decimal.Money `yaml:"amount" json:"amount"`
	UnusedLeaveDays int           `yaml:"unused_leave_days,omitempty" json:"unused_leave_days,omitempty"`
}

// VoluntaryRetirement declares compensation under a VRS scheme.
type VoluntaryRetirement struct {
	Amount             decimal.Money `yaml:"amount" json:"amount"`
	MonthsToRetirement int           `yaml:"months_to_retirement,omitempty" json:"months_to_retirement,omitempty"`
}

// RetrenchmentCompensation declares compensation on retrenchment.
type RetrenchmentCompensation struct {
	Amount decimal.Money `yaml:"amount" json:"amount"`
}

// Pension declares commuted and uncommuted pension receipts.
type Pension struct {
	CommutedAmount   decimal.Money `yaml:"commuted_amount,omitempty" json:"commuted_amount,omitempty"`
	UncommutedAmount decimal.Money `yaml:"uncommuted_amount,omitempty" json:"uncommuted_amount,omitempty"`
	GratuityReceived bool          `yaml:"gratuity_received,omitempty" json:"gratuity_received,omitempty"`
}

// TaxationRecord is the full declared-income snapshot for one employee and
// fiscal year. It is immutable for the duration of one calculation.
type TaxationRecord struct {
	EmployeeID string          `yaml:"employee_id" json:"employee_id"`
	FiscalYear string          `yaml:"fiscal_year" json:"fiscal_year"`
	Regime     TaxRegime       `yaml:"regime" json:"regime"`
	Context    TaxpayerContext `yaml:"context" json:"context"`

	Salary        SalaryIncome        `yaml:"salary" json:"salary"`
	Perquisites   Perquisites         `yaml:"perquisites,omitempty" json:"perquisites,omitempty"`
	OtherSources  OtherSourcesIncome  `yaml:"other_sources,omitempty" json:"other_sources,omitempty"`
	HouseProperty HousePropertyIncome `yaml:"house_property,omitempty" json:"house_property,omitempty"`
	CapitalGains  CapitalGains        `yaml:"capital_gains,omitempty" json:"capital_gains,omitempty"`

	Gratuity        *Gratuity                 `yaml:"gratuity,omitempty" json:"gratuity,omitempty"`
	LeaveEncashment *LeaveEncashment          `yaml:"leave_encashment,omitempty" json:"leave_encashment,omitempty"`
	VRS             *VoluntaryRetirement      `yaml:"vrs,omitempty" json:"vrs,omitempty"`
	Retrenchment    *RetrenchmentCompensation `yaml:"retrenchment,omitempty" json:"retrenchment,omitempty"`
	Pension         *Pension                  `yaml:"pension,omitempty" json:"pension,omitempty"`

	Deductions DeductionSet `yaml:"deductions,omitempty" json:"deductions,omitempty"`
}

// FiscalYearEnd returns March 31 of the closing year of the record's fiscal
// year ("2024-25" ends on 2025-03-31), the default service-measurement date.
// Falls back to the current calendar year end when unparseable.
func (r *TaxationRecord) FiscalYearEnd() time.Time {
	var start int
	if _, err := fmt.Sscanf(r.FiscalYear, "%d", &start); err != nil || start == 0 {
		return time.Date(time.Now().Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(start+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}
