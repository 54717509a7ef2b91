package calculation

import (
	"fmt"

	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// ValidateRecord checks a taxation record before any computation starts.
// Malformed declared input is a ValidationError; an internally inconsistent
// business state is a DomainRuleError. The engine never proceeds past a
// failed validation.
func ValidateRecord(r *domain.TaxationRecord) error {
	if r == nil {
		return &domain.ValidationError{Field: "record", Reason: "no taxation record supplied"}
	}
	if r.EmployeeID == "" {
		return &domain.ValidationError{Field: "employee_id", Reason: "must not be empty"}
	}
	if r.FiscalYear == "" {
		return &domain.ValidationError{Field: "fiscal_year", Reason: "must not be empty"}
	}
	if _, err := domain.ParseRegime(string(r.Regime)); err != nil {
		return err
	}

	ctx := &r.Context
	if ctx.DateOfJoining.IsZero() {
		return &domain.ValidationError{Field: "context.date_of_joining", Reason: "is required"}
	}
	if !ctx.DateOfLeaving.IsZero() && ctx.DateOfLeaving.Before(ctx.DateOfJoining) {
		return &domain.ValidationError{Field: "context.date_of_leaving", Reason: "must not precede date of joining"}
	}
	if ctx.Age < 0 {
		return &domain.ValidationError{Field: "context.age", Reason: "must not be negative"}
	}
	if ctx.LastDrawnMonthlySalary.IsNegative() {
		return &domain.ValidationError{Field: "context.last_drawn_monthly_salary", Reason: "must not be negative"}
	}

	for field, amount := range map[string]decimal.Money{
		"salary.basic_pay":            r.Salary.BasicPay,
		"salary.dearness_allowance":   r.Salary.DearnessAllowance,
		"salary.house_rent_allowance": r.Salary.HouseRentAllowance,
		"salary.rent_paid":            r.Salary.RentPaid,
		"salary.special_allowance":    r.Salary.SpecialAllowance,
		"salary.conveyance_allowance": r.Salary.ConveyanceAllowance,
		"salary.bonus":                r.Salary.Bonus,
		"salary.commission":           r.Salary.Commission,
		"salary.other_allowances":     r.Salary.OtherAllowances,
		"salary.professional_tax_paid": r.Salary.ProfessionalTaxPaid,
		"other_sources.savings_interest": r.OtherSources.SavingsInterest,
		"house_property.annual_rent":  r.HouseProperty.AnnualRent,
	} {
		if amount.IsNegative() {
			return &domain.ValidationError{Field: field, Reason: "must not be negative"}
		}
	}

	for section, claimed := range r.Deductions {
		if claimed.IsNegative() {
			return &domain.ValidationError{
				Field:  fmt.Sprintf("deductions.%s", section),
				Reason: "claimed amount must not be negative",
			}
		}
	}

	if r.Gratuity != nil {
		if r.Gratuity.Amount.IsNegative() {
			return &domain.ValidationError{Field: "gratuity.amount", Reason: "must not be negative"}
		}
		if r.Gratuity.ClaimGovernmentExemption && !ctx.IsGovernmentEmployee {
			return &domain.DomainRuleError{
				Rule:   "gratuity government exemption",
				Reason: "claimed by an employee not flagged as a government employee",
			}
		}
	}
	if r.LeaveEncashment != nil && r.LeaveEncashment.Amount.IsNegative() {
		return &domain.ValidationError{Field: "leave_encashment.amount", Reason: "must not be negative"}
	}
	if r.VRS != nil && r.VRS.Amount.IsNegative() {
		return &domain.ValidationError{Field: "vrs.amount", Reason: "must not be negative"}
	}
	if r.Retrenchment != nil && r.Retrenchment.Amount.IsNegative() {
		return &domain.ValidationError{Field: "retrenchment.amount", Reason: "must not be negative"}
	}

	return nil
}
