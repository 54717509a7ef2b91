package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// TaxEngine orchestrates the full statutory computation: income
// aggregation, regime-gated exemptions and deductions, slab tax,
// special-rate capital-gains tax, and the rebate/surcharge/cess pipeline.
// The engine holds only configuration; every calculation consumes a
// snapshot and returns a fresh breakdown, so it is safe for concurrent use
// across employees.
type TaxEngine struct {
	Statutory    *domain.StatutoryConfig
	Salary       *SalaryCalculator
	Perquisites  *PerquisiteCalculator
	Retirement   *RetirementBenefitCalculator
	Income       *IncomeCalculator
	Deductions   *DeductionCalculator
	CapitalGains *CapitalGainsCalculator
	Logger       Logger
}

// NewTaxEngine creates an engine with the default statutory tables.
func NewTaxEngine() *TaxEngine {
	return NewTaxEngineWithConfig(domain.DefaultStatutoryConfig())
}

// NewTaxEngineWithConfig creates an engine with explicit statutory tables.
func NewTaxEngineWithConfig(cfg *domain.StatutoryConfig) *TaxEngine {
	return &TaxEngine{
		Statutory:    cfg,
		Salary:       NewSalaryCalculator(cfg.Exemptions),
		Perquisites:  NewPerquisiteCalculator(cfg.Perquisites),
		Retirement:   NewRetirementBenefitCalculator(cfg.Exemptions),
		Income:       NewIncomeCalculator(cfg.Exemptions),
		Deductions:   NewDeductionCalculator(cfg.Deductions, cfg.Exemptions),
		CapitalGains: NewCapitalGainsCalculator(cfg.CapitalGains),
		Logger:       NopLogger{},
	}
}

// SetLogger sets the logger for the engine. A nil logger restores the no-op.
func (e *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// CalculateTotalTax computes the final annual liability with every
// statutory stage retained on the breakdown. Identical inputs always
// reproduce an identical breakdown.
func (e *TaxEngine) CalculateTotalTax(record *domain.TaxationRecord) (*domain.TaxBreakdown, error) {
	if err := ValidateRecord(record); err != nil {
		return nil, err
	}

	regime := record.Regime
	regimeCfg := e.Statutory.Regime(regime)
	ctx := &record.Context
	asOf := record.FiscalYearEnd()

	grossSalary := e.Salary.GrossSalary(&record.Salary)
	hraExempt := e.Salary.HRAExemption(&record.Salary, regime, ctx)
	basicDA := record.Salary.BasicPlusDA()

	perquisites := e.Perquisites.Total(&record.Perquisites, regime, basicDA, grossSalary)
	retirement := e.Retirement.Total(record, asOf)
	otherSources := e.Income.OtherSources(&record.OtherSources)
	houseProperty := e.Income.HouseProperty(&record.HouseProperty, regime)

	cgDetail := e.CapitalGains.Calculate(&record.CapitalGains)

	// Non-equity short-term gains are ordinary income.
	regularIncome := decimal.Sum(
		grossSalary.Sub(hraExempt),
		perquisites,
		retirement,
		otherSources,
		cgDetail.STCGOther,
	).Add(houseProperty)

	// Standard deduction applies in both regimes at the regime's amount;
	// professional tax is a salary deduction only under the old regime.
	statutoryDeductions := regimeCfg.StandardDeduction
	if !regime.IsNew() {
		statutoryDeductions = statutoryDeductions.Add(record.Salary.ProfessionalTaxPaid)
	}
	chapterVIA := e.Deductions.Total(record.Deductions, &record.OtherSources, regime, ctx)
	totalDeductions := statutoryDeductions.Add(chapterVIA)

	netRegular := regularIncome.Sub(totalDeductions).NonNegative()

	slabTax := NewSlabCalculator(regimeCfg.Slabs).Calculate(netRegular)
	cgTax := cgDetail.TotalTax()
	baseTax := slabTax.Add(cgTax)

	// Rebate eligibility and the surcharge band are judged on the full net
	// taxable income including the special-rate buckets.
	netIncome := decimal.Sum(netRegular, cgDetail.STCG111A, cgDetail.LTCG112ATaxable, cgDetail.LTCGOther)

	pipeline := NewLiabilityPipeline(regimeCfg).Apply(baseTax, netIncome)

	e.Logger.Debugf("calculated %s/%s: net income %s, total tax %s",
		record.EmployeeID, record.FiscalYear, netIncome, pipeline.TotalTax)

	grossIncome := decimal.Sum(
		regularIncome,
		cgDetail.STCG111A,
		cgDetail.LTCG112A,
		cgDetail.LTCGOther,
	)

	return &domain.TaxBreakdown{
		EmployeeID: record.EmployeeID,
		FiscalYear: record.FiscalYear,
		Regime:     regime,

		SlabTax:         slabTax.Round(),
		CapitalGainsTax: cgTax.Round(),
		BaseTax:         pipeline.BaseTax.Round(),
		Rebate:          pipeline.Rebate.Round(),
		TaxAfterRebate:  pipeline.TaxAfterRebate.Round(),
		Surcharge:       pipeline.Surcharge.Round(),
		MarginalRelief:  pipeline.MarginalRelief.Round(),
		Cess:            pipeline.Cess.Round(),
		TotalTax:        pipeline.TotalTax.Round(),

		Details: domain.BreakdownDetails{
			GrossSalary:               grossSalary.Round(),
			SalaryExemptions:          hraExempt.Round(),
			PerquisiteValue:           perquisites.Round(),
			RetirementBenefitsTaxable: retirement.Round(),
			OtherSources:              otherSources.Round(),
			HouseProperty:             houseProperty.Round(),
			RegularIncome:             regularIncome.Round(),
			CapitalGains:              cgDetail,
			GrossIncome:               grossIncome.Round(),
			TotalDeductions:           totalDeductions.Round(),
			NetIncome:                 netIncome.Round(),
		},
	}, nil
}
