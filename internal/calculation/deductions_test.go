package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

func newDeductionCalculator() *DeductionCalculator {
	cfg := domain.DefaultStatutoryConfig()
	return NewDeductionCalculator(cfg.Deductions, cfg.Exemptions)
}

func TestCappedClaims(t *testing.T) {
	dc := newDeductionCalculator()
	ctx := &domain.TaxpayerContext{Age: 40}
	senior := &domain.TaxpayerContext{Age: 65}

	tests := []struct {
		name     string
		section  string
		claimed  decimal.Money
		ctx      *domain.TaxpayerContext
		expected decimal.Money
	}{
		{
			name:     "80C claim above the cap",
			section:  domain.Section80C,
			claimed:  decimal.NewMoneyFromInt(200000),
			ctx:      ctx,
			expected: decimal.NewMoneyFromInt(150000),
		},
		{
			name:     "80C claim within the cap",
			section:  domain.Section80C,
			claimed:  decimal.NewMoneyFromInt(90000),
			ctx:      ctx,
			expected: decimal.NewMoneyFromInt(90000),
		},
		{
			name:     "80D standard cap",
			section:  domain.Section80D,
			claimed:  decimal.NewMoneyFromInt(60000),
			ctx:      ctx,
			expected: decimal.NewMoneyFromInt(25000),
		},
		{
			name:     "80D senior cap",
			section:  domain.Section80D,
			claimed:  decimal.NewMoneyFromInt(60000),
			ctx:      senior,
			expected: decimal.NewMoneyFromInt(50000),
		},
		{
			name:     "80E is uncapped",
			section:  domain.Section80E,
			claimed:  decimal.NewMoneyFromInt(300000),
			ctx:      ctx,
			expected: decimal.NewMoneyFromInt(300000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dc.Capped(tt.section, tt.claimed, tt.ctx)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestInterestDeduction(t *testing.T) {
	dc := newDeductionCalculator()
	income := &domain.OtherSourcesIncome{
		SavingsInterest:      decimal.NewMoneyFromInt(15000),
		FixedDepositInterest: decimal.NewMoneyFromInt(20000),
	}

	t.Run("below senior age only savings interest qualifies", func(t *testing.T) {
		ctx := &domain.TaxpayerContext{Age: 40}
		got := dc.InterestDeduction(income, domain.RegimeOld, ctx)
		assert.True(t, decimal.NewMoneyFromInt(10000).Equal(got), "got %s", got)
	})

	t.Run("from senior age all bank interest under the higher cap", func(t *testing.T) {
		ctx := &domain.TaxpayerContext{Age: 60}
		got := dc.InterestDeduction(income, domain.RegimeOld, ctx)
		assert.True(t, decimal.NewMoneyFromInt(35000).Equal(got), "got %s", got)
	})

	t.Run("senior cap binds", func(t *testing.T) {
		ctx := &domain.TaxpayerContext{Age: 70}
		rich := &domain.OtherSourcesIncome{FixedDepositInterest: decimal.NewMoneyFromInt(90000)}
		got := dc.InterestDeduction(rich, domain.RegimeOld, ctx)
		assert.True(t, decimal.NewMoneyFromInt(50000).Equal(got), "got %s", got)
	})

	t.Run("never available in the new regime", func(t *testing.T) {
		ctx := &domain.TaxpayerContext{Age: 70}
		got := dc.InterestDeduction(income, domain.RegimeNew, ctx)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestDeductionTotalByRegime(t *testing.T) {
	dc := newDeductionCalculator()
	ctx := &domain.TaxpayerContext{Age: 40}
	income := &domain.OtherSourcesIncome{SavingsInterest: decimal.NewMoneyFromInt(8000)}

	set := domain.DeductionSet{
		domain.Section80C:    decimal.NewMoneyFromInt(200000),
		domain.Section80D:    decimal.NewMoneyFromInt(20000),
		domain.Section80CCD2: decimal.NewMoneyFromInt(60000),
	}

	t.Run("old regime takes every capped section plus interest", func(t *testing.T) {
		got := dc.Total(set, income, domain.RegimeOld, ctx)
		// 150000 + 20000 + 60000 + 8000
		assert.True(t, decimal.NewMoneyFromInt(238000).Equal(got), "got %s", got)
	})

	t.Run("new regime keeps only employer NPS", func(t *testing.T) {
		got := dc.Total(set, income, domain.RegimeNew, ctx)
		assert.True(t, decimal.NewMoneyFromInt(60000).Equal(got), "got %s", got)
	})

	t.Run("interest claims in the set are ignored in favor of income", func(t *testing.T) {
		withClaim := domain.DeductionSet{
			domain.Section80TTA: decimal.NewMoneyFromInt(99999),
		}
		got := dc.Total(withClaim, income, domain.RegimeOld, ctx)
		assert.True(t, decimal.NewMoneyFromInt(8000).Equal(got), "got %s", got)
	})
}
