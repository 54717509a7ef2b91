package output

import (
	"fmt"
	"strings"

	"github.com/taxkit/payroll-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(b *domain.TaxBreakdown) ([]byte, error)
	FormatPayout(p *domain.MonthlySalaryProjection) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// ConsoleFormatter renders an aligned rupee table with every pipeline
// stage, suitable for a terminal.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(b *domain.TaxBreakdown) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Tax computation for %s (FY %s, %s regime)\n", b.EmployeeID, b.FiscalYear, b.Regime)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("=", 56))

	row := func(label string, amount fmt.Stringer) {
		fmt.Fprintf(&sb, "  %-36s %15s\n", label, amount.String())
	}

	d := b.Details
	row("Gross salary", d.GrossSalary)
	row("Salary exemptions", d.SalaryExemptions)
	row("Perquisite value", d.PerquisiteValue)
	row("Retirement benefits (taxable)", d.RetirementBenefitsTaxable)
	row("Other sources", d.OtherSources)
	row("House property", d.HouseProperty)
	row("Regular income", d.RegularIncome)
	row("Gross income", d.GrossIncome)
	row("Total deductions", d.TotalDeductions)
	row("Net taxable income", d.NetIncome)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("-", 56))
	row("STCG 111A / tax", d.CapitalGains.STCG111ATax)
	row("LTCG 112A taxable / tax", d.CapitalGains.LTCG112ATax)
	row("LTCG other / tax", d.CapitalGains.LTCGOtherTax)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("-", 56))
	row("Slab tax", b.SlabTax)
	row("Capital gains tax", b.CapitalGainsTax)
	row("Base tax", b.BaseTax)
	row("Rebate", b.Rebate)
	row("Tax after rebate", b.TaxAfterRebate)
	row("Surcharge", b.Surcharge)
	row("Marginal relief", b.MarginalRelief)
	row("Cess", b.Cess)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("=", 56))
	row("TOTAL TAX", b.TotalTax)

	return []byte(sb.String()), nil
}

func (ConsoleFormatter) FormatPayout(p *domain.MonthlySalaryProjection) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Monthly payout for %s (%04d-%02d)\n", p.EmployeeID, p.Year, p.Month)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("=", 56))
	fmt.Fprintf(&sb, "  %-36s %15d\n", "Days in month", p.DaysInMonth)
	fmt.Fprintf(&sb, "  %-36s %15d\n", "Pay period days", p.PeriodDays)
	fmt.Fprintf(&sb, "  %-36s %15d\n", "LWP days", p.LWPDays)
	fmt.Fprintf(&sb, "  %-36s %15s\n", "Working ratio", p.WorkingRatio.String())

	row := func(label string, amount fmt.Stringer) {
		fmt.Fprintf(&sb, "  %-36s %15s\n", label, amount.String())
	}

	fmt.Fprintf(&sb, "%s\n", strings.Repeat("-", 56))
	row("Basic", p.Basic)
	row("DA", p.DA)
	row("HRA", p.HRA)
	row("Allowances", p.Allowances)
	row("Bonus", p.Bonus)
	row("Gross pay", p.GrossPay)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("-", 56))
	row("Income tax", p.IncomeTax)
	row("EPF", p.EPF)
	row("ESI", p.ESI)
	row("Professional tax", p.ProfessionalTax)
	row("Total deductions", p.TotalDeductions)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("=", 56))
	row("NET PAY", p.NetPay)

	return []byte(sb.String()), nil
}
