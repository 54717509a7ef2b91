package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// LiabilityPipeline applies the post-tax statutory stages in their strict
// order: rebate, then surcharge with marginal relief, then cess. Each stage
// depends on the prior stage's output, and every intermediate value is
// retained for the breakdown.
type LiabilityPipeline struct {
	Config domain.RegimeConfig
}

// NewLiabilityPipeline creates a pipeline for a regime's rate tables
func NewLiabilityPipeline(config domain.RegimeConfig) *LiabilityPipeline {
	return &LiabilityPipeline{Config: config}
}

// PipelineResult carries every stage of the rebate/surcharge/cess sequence.
type PipelineResult struct {
	BaseTax        decimal.Money
	Rebate         decimal.Money
	TaxAfterRebate decimal.Money
	Surcharge      decimal.Money
	MarginalRelief decimal.Money
	Cess           decimal.Money
	TotalTax       decimal.Money
}

// Rebate grants the full low-income rebate up to the cap when net income is
// within the threshold, never reducing tax below zero.
func (lp *LiabilityPipeline) Rebate(baseTax, netIncome decimal.Money) decimal.Money {
	if netIncome.GreaterThan(lp.Config.RebateIncomeThreshold) {
		return decimal.Zero()
	}
	return decimal.Min(baseTax, lp.Config.RebateCap)
}

// Surcharge selects the rate of the highest crossed income band, then caps
// it with marginal relief: the surcharge may never exceed the income above
// the band threshold. Returns the effective surcharge and the relief
// applied.
func (lp *LiabilityPipeline) Surcharge(taxAfterRebate, netIncome decimal.Money) (decimal.Money, decimal.Money) {
	var band *domain.SurchargeBand
	for i := range lp.Config.SurchargeBands {
		if netIncome.GreaterThan(lp.Config.SurchargeBands[i].Threshold) {
			band = &lp.Config.SurchargeBands[i]
		}
	}
	if band == nil {
		return decimal.Zero(), decimal.Zero()
	}

	regular := band.Rate.ApplyTo(taxAfterRebate)
	incomeOverThreshold := netIncome.Sub(band.Threshold)
	relief := regular.Sub(incomeOverThreshold).NonNegative()
	return regular.Sub(relief), relief
}

// Apply runs the full pipeline over the combined base tax.
func (lp *LiabilityPipeline) Apply(baseTax, netIncome decimal.Money) PipelineResult {
	rebate := lp.Rebate(baseTax, netIncome)
	taxAfterRebate := baseTax.Sub(rebate).NonNegative()

	surcharge, relief := lp.Surcharge(taxAfterRebate, netIncome)

	cess := lp.Config.CessRate.ApplyTo(taxAfterRebate.Add(surcharge))

	return PipelineResult{
		BaseTax:        baseTax,
		Rebate:         rebate,
		TaxAfterRebate: taxAfterRebate,
		Surcharge:      surcharge,
		MarginalRelief: relief,
		Cess:           cess,
		TotalTax:       decimal.Sum(taxAfterRebate, surcharge, cess),
	}
}
