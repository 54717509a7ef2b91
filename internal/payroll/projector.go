package payroll

import (
	"fmt"
	"time"

	stddecimal "github.com/shopspring/decimal"
	"github.com/taxkit/payroll-calculator/internal/calculation"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/dateutil"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// Employee is the master record the projector needs from the employee
// store.
type Employee struct {
	ID            string
	DateOfJoining time.Time
	DateOfLeaving time.Time // zero when still employed
}

// EmployeeStore looks up employee master data. Implementations return
// (nil, nil) when no record exists; the projector converts that into a
// typed missing-prerequisite failure.
type EmployeeStore interface {
	GetEmployee(id string) (*Employee, error)
}

// TaxationStore fetches declared income and persists computed breakdowns.
// GetRecord returns (nil, nil) when no record exists for the year.
type TaxationStore interface {
	GetRecord(employeeID, fiscalYear string) (*domain.TaxationRecord, error)
	SaveBreakdown(b *domain.TaxBreakdown) error
}

// AttendanceSource reports leave-without-pay days for an employee-month.
type AttendanceSource interface {
	GetLWPDays(employeeID string, month, year int) (int, error)
}

// Projector prorates the annual liability and salary components over a
// partial or working month to produce a per-month net payout. It recomputes
// from the annual engine every time so the monthly figures never drift from
// the annual ones.
type Projector struct {
	Employees  EmployeeStore
	Taxation   TaxationStore
	Attendance AttendanceSource
	Engine     *calculation.TaxEngine
	Config     domain.PayrollConfig
	Logger     calculation.Logger
}

// NewProjector creates a payout projector over the given collaborators
func NewProjector(employees EmployeeStore, taxation TaxationStore, attendance AttendanceSource, engine *calculation.TaxEngine) *Projector {
	return &Projector{
		Employees:  employees,
		Taxation:   taxation,
		Attendance: attendance,
		Engine:     engine,
		Config:     engine.Statutory.Payroll,
		Logger:     calculation.NopLogger{},
	}
}

// FiscalYearFor returns the fiscal year label ("2024-25") containing the
// given calendar month. The fiscal year runs April through March.
func FiscalYearFor(month, year int) string {
	start := year
	if month < 4 {
		start = year - 1
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// ComputeMonthlyPayout produces the prorated net payout for one
// employee-month. It fails with a typed error rather than a zero payout
// when a prerequisite record is missing, the employment window has no
// overlap with the month, or the reported LWP exceeds the pay period.
func (p *Projector) ComputeMonthlyPayout(employeeID string, month, year int) (*domain.MonthlySalaryProjection, error) {
	if month < 1 || month > 12 {
		return nil, &domain.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}

	emp, err := p.Employees.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, &domain.MissingPrerequisiteError{Resource: "employee master record", EmployeeID: employeeID}
	}

	fiscalYear := FiscalYearFor(month, year)
	record, err := p.Taxation.GetRecord(employeeID, fiscalYear)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &domain.MissingPrerequisiteError{
			Resource:   "taxation record",
			EmployeeID: employeeID,
			FiscalYear: fiscalYear,
		}
	}

	breakdown, err := p.Engine.CalculateTotalTax(record)
	if err != nil {
		return nil, err
	}

	lwp, err := p.Attendance.GetLWPDays(employeeID, month, year)
	if err != nil {
		return nil, err
	}
	if lwp < 0 {
		return nil, &domain.ValidationError{Field: "lwp_days", Reason: "must not be negative"}
	}

	from, to, periodDays := dateutil.ClipToMonth(emp.DateOfJoining, emp.DateOfLeaving, year, time.Month(month))
	if periodDays == 0 {
		return nil, &domain.DomainRuleError{
			Rule:   "payout period",
			Reason: "employment window has no overlap with the requested month",
		}
	}
	if lwp > periodDays {
		return nil, &domain.ValidationError{Field: "lwp_days", Reason: "exceeds the days in the pay period"}
	}

	daysInMonth := dateutil.DaysInMonth(year, time.Month(month))
	ratio := decimal.NewRateFromDecimal(
		stddecimal.NewFromInt(int64(periodDays - lwp)).Div(stddecimal.NewFromInt(int64(daysInMonth))),
	)

	salary := &record.Salary
	basic := ratio.ApplyTo(salary.BasicPay.Monthly())
	da := ratio.ApplyTo(salary.DearnessAllowance.Monthly())
	hra := ratio.ApplyTo(salary.HouseRentAllowance.Monthly())
	allowances := ratio.ApplyTo(decimal.Sum(
		salary.SpecialAllowance,
		salary.ConveyanceAllowance,
		salary.Commission,
		salary.OtherAllowances,
	).Monthly())
	bonus := ratio.ApplyTo(salary.Bonus.Monthly())
	gross := decimal.Sum(basic, da, hra, allowances, bonus)

	incomeTax := ratio.ApplyTo(breakdown.TotalTax.Monthly())

	epf := p.EPF(basic.Add(da))
	esi := p.ESI(gross)
	profTax := p.ProfessionalTax(gross)

	deductions := decimal.Sum(incomeTax, epf, esi, profTax)

	p.Logger.Debugf("payout %s %d-%02d: ratio %s, gross %s, net %s",
		employeeID, year, month, ratio, gross, gross.Sub(deductions))

	return &domain.MonthlySalaryProjection{
		EmployeeID:  employeeID,
		Month:       month,
		Year:        year,
		PeriodStart: from,
		PeriodEnd:   to,
		DaysInMonth: daysInMonth,
		PeriodDays:  periodDays,
		LWPDays:     lwp,

		WorkingRatio: ratio,

		Basic:           basic.Round(),
		DA:              da.Round(),
		HRA:             hra.Round(),
		Allowances:      allowances.Round(),
		Bonus:           bonus.Round(),
		GrossPay:        gross.Round(),
		IncomeTax:       incomeTax.Round(),
		EPF:             epf.Round(),
		ESI:             esi.Round(),
		ProfessionalTax: profTax.Round(),
		TotalDeductions: deductions.Round(),
		NetPay:          gross.Sub(deductions).Round(),
	}, nil
}

// EPF is the employee provident-fund contribution: the statutory rate on
// prorated basic+DA, with contributory wages capped at the monthly ceiling.
func (p *Projector) EPF(basicDA decimal.Money) decimal.Money {
	wages := decimal.Min(basicDA, p.Config.EPFWageCeilingMonthly)
	return p.Config.EPFEmployeeRate.ApplyTo(wages)
}

// ESI applies only while prorated gross is within the coverage threshold.
func (p *Projector) ESI(gross decimal.Money) decimal.Money {
	if gross.GreaterThan(p.Config.ESIGrossThreshold) {
		return decimal.Zero()
	}
	return p.Config.ESIEmployeeRate.ApplyTo(gross)
}

// ProfessionalTax walks the monthly step table; a zero upper bound marks
// the open-ended top step.
func (p *Projector) ProfessionalTax(gross decimal.Money) decimal.Money {
	for _, slab := range p.Config.ProfessionalTaxSlabs {
		if slab.GrossUpTo.IsZero() || gross.LessThanOrEqual(slab.GrossUpTo) {
			return slab.Tax
		}
	}
	return decimal.Zero()
}
