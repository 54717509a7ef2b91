package calculation

import (
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// CapitalGainsCalculator taxes the special-rate gain buckets separately
// from slab income. Short-term gains on STT-paid equity and both long-term
// buckets use flat rates; other short-term gains are routed into slab
// income and never taxed here. The annual 112A exemption reduces only its
// own bucket.
type CapitalGainsCalculator struct {
	Config domain.CapitalGainsConfig
}

// NewCapitalGainsCalculator creates a capital gains calculator from
// statutory config
func NewCapitalGainsCalculator(config domain.CapitalGainsConfig) *CapitalGainsCalculator {
	return &CapitalGainsCalculator{Config: config}
}

// SlabPortion returns the gains that flow into regular slab income.
func (cc *CapitalGainsCalculator) SlabPortion(cg *domain.CapitalGains) decimal.Money {
	return cg.STCGOther.NonNegative()
}

// Calculate produces the per-bucket audit detail and flat-rate taxes.
func (cc *CapitalGainsCalculator) Calculate(cg *domain.CapitalGains) domain.CapitalGainsDetail {
	stcg111A := cg.STCGEquity111A.NonNegative()
	ltcg112A := cg.LTCGEquity112A.NonNegative()
	ltcgOther := cg.LTCGOther.NonNegative()

	exempt := decimal.Min(ltcg112A, cc.Config.LTCG112AExempt)
	taxable112A := ltcg112A.Sub(exempt)

	return domain.CapitalGainsDetail{
		STCG111A:        stcg111A,
		STCG111ATax:     cc.Config.STCG111ARate.ApplyTo(stcg111A),
		STCGOther:       cc.SlabPortion(cg),
		LTCG112A:        ltcg112A,
		LTCG112AExempt:  exempt,
		LTCG112ATaxable: taxable112A,
		LTCG112ATax:     cc.Config.LTCG112ARate.ApplyTo(taxable112A),
		LTCGOther:       ltcgOther,
		LTCGOtherTax:    cc.Config.LTCGOtherRate.ApplyTo(ltcgOther),
	}
}
