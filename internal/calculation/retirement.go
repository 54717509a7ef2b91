package calculation

import (
	"time"

	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// RetirementBenefitCalculator values the one-off separation receipts:
// gratuity, leave encashment, voluntary retirement compensation,
// retrenchment compensation and pension. Several of these share the same
// "taxable = received − least of N bounds" shape, so the bound lists are
// parameterized over one helper.
type RetirementBenefitCalculator struct {
	Config domain.ExemptionConfig
}

// NewRetirementBenefitCalculator creates a calculator from statutory config
func NewRetirementBenefitCalculator(config domain.ExemptionConfig) *RetirementBenefitCalculator {
	return &RetirementBenefitCalculator{Config: config}
}

// leastOf returns received minus the smallest of the exemption bounds,
// clamped to zero.
func leastOf(received decimal.Money, first decimal.Money, rest ...decimal.Money) decimal.Money {
	exempt := decimal.MinOf(first, rest...)
	return received.Sub(exempt).NonNegative()
}

// Gratuity taxes the receipt above the least of the actual amount, 15 days'
// salary per completed service year, and the statutory cap. Government
// employees are fully exempt; that check comes before the formula.
func (rc *RetirementBenefitCalculator) Gratuity(g *domain.Gratuity, ctx *domain.TaxpayerContext, asOf time.Time) decimal.Money {
	if g == nil || g.Amount.IsZero() {
		return decimal.Zero()
	}
	if ctx.IsGovernmentEmployee {
		return decimal.Zero()
	}

	serviceYears := int64(ctx.CompletedServiceYears(asOf))
	salaryBound := rc.Config.GratuityDaysFactor.ApplyTo(ctx.LastDrawnMonthlySalary).MulInt(serviceYears)

	return leastOf(g.Amount, g.Amount, salaryBound, rc.Config.GratuityCap)
}

// LeaveEncashment taxes the receipt above the least of the actual amount,
// ten months' salary, the statutory cap, and the cash value of unexpired
// leave. Government employees and deceased employees' estates are fully
// exempt; those checks come before the formula.
func (rc *RetirementBenefitCalculator) LeaveEncashment(le *domain.LeaveEncashment, ctx *domain.TaxpayerContext, asOf time.Time) decimal.Money {
	if le == nil || le.Amount.IsZero() {
		return decimal.Zero()
	}
	if ctx.IsGovernmentEmployee || ctx.IsDeceased {
		return decimal.Zero()
	}

	monthlySalary := ctx.LastDrawnMonthlySalary
	salaryBound := monthlySalary.MulInt(rc.Config.LeaveEncashmentMonths)

	// Unexpired leave capped at the statutory accrual rate per year of
	// service, valued at a 30-day month.
	serviceYears := ctx.CompletedServiceYears(asOf)
	maxDays := rc.Config.LeaveAccrualDaysPerYear * serviceYears
	days := le.UnusedLeaveDays
	if days > maxDays {
		days = maxDays
	}
	leaveValue := monthlySalary.DivInt(30).MulInt(int64(days))

	return leastOf(le.Amount, le.Amount, salaryBound, rc.Config.LeaveEncashmentCap, leaveValue)
}

// VoluntaryRetirement taxes VRS compensation above the least of the actual
// amount, the statutory cap, three months' salary per completed service
// year, and salary for the months left to retirement.
func (rc *RetirementBenefitCalculator) VoluntaryRetirement(v *domain.VoluntaryRetirement, ctx *domain.TaxpayerContext, asOf time.Time) decimal.Money {
	if v == nil || v.Amount.IsZero() {
		return decimal.Zero()
	}

	monthlySalary := ctx.LastDrawnMonthlySalary
	serviceYears := int64(ctx.CompletedServiceYears(asOf))
	bounds := []decimal.Money{
		rc.Config.VRSCap,
		monthlySalary.MulInt(3).MulInt(serviceYears),
	}
	if v.MonthsToRetirement > 0 {
		bounds = append(bounds, monthlySalary.MulInt(int64(v.MonthsToRetirement)))
	}

	return leastOf(v.Amount, v.Amount, bounds...)
}

// Retrenchment taxes compensation above the least of the actual amount, the
// statutory cap, and 15 days' average salary per service year, where a
// part-year remainder above six months rounds up to a full year.
func (rc *RetirementBenefitCalculator) Retrenchment(r *domain.RetrenchmentCompensation, ctx *domain.TaxpayerContext, asOf time.Time) decimal.Money {
	if r == nil || r.Amount.IsZero() {
		return decimal.Zero()
	}
	if ctx.IsGovernmentEmployee {
		return decimal.Zero()
	}

	serviceYears := int64(ctx.ServiceYearsRoundedUp(asOf))
	salaryBound := ctx.LastDrawnMonthlySalary.MulInt(15).DivInt(30).MulInt(serviceYears)

	return leastOf(r.Amount, r.Amount, rc.Config.RetrenchmentCap, salaryBound)
}

// Pension taxes commuted pension per the government/private split and
// uncommuted pension in full. For private employees one third of the
// commuted value is exempt when gratuity was also received, one half
// otherwise.
func (rc *RetirementBenefitCalculator) Pension(p *domain.Pension, ctx *domain.TaxpayerContext) decimal.Money {
	if p == nil {
		return decimal.Zero()
	}

	taxable := p.UncommutedAmount

	if p.CommutedAmount.IsPositive() && !ctx.IsGovernmentEmployee {
		var exempt decimal.Money
		if p.GratuityReceived {
			exempt = p.CommutedAmount.DivInt(3)
		} else {
			exempt = p.CommutedAmount.DivInt(2)
		}
		taxable = taxable.Add(p.CommutedAmount.Sub(exempt).NonNegative())
	}

	return taxable
}

// Total sums the taxable portion of every declared separation receipt.
func (rc *RetirementBenefitCalculator) Total(record *domain.TaxationRecord, asOf time.Time) decimal.Money {
	ctx := &record.Context
	return decimal.Sum(
		rc.Gratuity(record.Gratuity, ctx, asOf),
		rc.LeaveEncashment(record.LeaveEncashment, ctx, asOf),
		rc.VoluntaryRetirement(record.VRS, ctx, asOf),
		rc.Retrenchment(record.Retrenchment, ctx, asOf),
		rc.Pension(record.Pension, ctx),
	)
}
