package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

func privateEmployee(monthlySalary int64, joined time.Time) domain.TaxpayerContext {
	return domain.TaxpayerContext{
		Age:                    58,
		DateOfJoining:          joined,
		LastDrawnMonthlySalary: decimal.NewMoneyFromInt(monthlySalary),
	}
}

func TestGratuityExemption(t *testing.T) {
	rc := NewRetirementBenefitCalculator(domain.DefaultStatutoryConfig().Exemptions)
	asOf := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("least of three bounds", func(t *testing.T) {
		// 30 completed years at 104000/month: the salary bound is
		// 15/26 * 104000 * 30 = 1800000, below both the receipt and the
		// statutory cap.
		ctx := privateEmployee(104000, time.Date(1994, time.September, 15, 0, 0, 0, 0, time.UTC))
		g := &domain.Gratuity{Amount: decimal.NewMoneyFromInt(2500000)}

		got := rc.Gratuity(g, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(700000).Equal(got.Round()), "got %s", got)
	})

	t.Run("statutory cap binds", func(t *testing.T) {
		ctx := privateEmployee(300000, time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC))
		g := &domain.Gratuity{Amount: decimal.NewMoneyFromInt(2500000)}

		// Salary bound is well above the 20L cap here.
		got := rc.Gratuity(g, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(500000).Equal(got), "got %s", got)
	})

	t.Run("receipt within every bound is fully exempt", func(t *testing.T) {
		ctx := privateEmployee(300000, time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC))
		g := &domain.Gratuity{Amount: decimal.NewMoneyFromInt(1000000)}

		got := rc.Gratuity(g, &ctx, asOf)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("government employee fully exempt before the formula", func(t *testing.T) {
		ctx := privateEmployee(104000, time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC))
		ctx.IsGovernmentEmployee = true
		g := &domain.Gratuity{Amount: decimal.NewMoneyFromInt(5000000), ClaimGovernmentExemption: true}

		got := rc.Gratuity(g, &ctx, asOf)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestLeaveEncashmentExemption(t *testing.T) {
	rc := NewRetirementBenefitCalculator(domain.DefaultStatutoryConfig().Exemptions)
	asOf := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("leave value bound binds", func(t *testing.T) {
		// 10 completed years, 240 unused days within the 300-day accrual
		// ceiling. Leave value = 60000/30 * 240 = 480000.
		ctx := privateEmployee(60000, time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC))
		le := &domain.LeaveEncashment{
			Amount:          decimal.NewMoneyFromInt(550000),
			UnusedLeaveDays: 240,
		}

		got := rc.LeaveEncashment(le, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(70000).Equal(got), "got %s", got)
	})

	t.Run("ten months salary bound binds", func(t *testing.T) {
		ctx := privateEmployee(40000, time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC))
		le := &domain.LeaveEncashment{
			Amount:          decimal.NewMoneyFromInt(600000),
			UnusedLeaveDays: 600,
		}

		// 10 * 40000 = 400000 undercuts the cap and the leave value.
		got := rc.LeaveEncashment(le, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(200000).Equal(got), "got %s", got)
	})

	t.Run("deceased employee estate fully exempt", func(t *testing.T) {
		ctx := privateEmployee(60000, time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC))
		ctx.IsDeceased = true
		le := &domain.LeaveEncashment{Amount: decimal.NewMoneyFromInt(550000), UnusedLeaveDays: 240}

		got := rc.LeaveEncashment(le, &ctx, asOf)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestVoluntaryRetirementExemption(t *testing.T) {
	rc := NewRetirementBenefitCalculator(domain.DefaultStatutoryConfig().Exemptions)
	asOf := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("statutory five lakh cap binds", func(t *testing.T) {
		ctx := privateEmployee(80000, time.Date(2005, time.June, 1, 0, 0, 0, 0, time.UTC))
		v := &domain.VoluntaryRetirement{Amount: decimal.NewMoneyFromInt(900000)}

		got := rc.VoluntaryRetirement(v, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(400000).Equal(got), "got %s", got)
	})

	t.Run("months to retirement bound binds", func(t *testing.T) {
		ctx := privateEmployee(80000, time.Date(2005, time.June, 1, 0, 0, 0, 0, time.UTC))
		v := &domain.VoluntaryRetirement{
			Amount:             decimal.NewMoneyFromInt(900000),
			MonthsToRetirement: 4,
		}

		// 80000 * 4 = 320000 undercuts the cap.
		got := rc.VoluntaryRetirement(v, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(580000).Equal(got), "got %s", got)
	})
}

func TestRetrenchmentExemption(t *testing.T) {
	rc := NewRetirementBenefitCalculator(domain.DefaultStatutoryConfig().Exemptions)

	t.Run("part year above six months rounds up", func(t *testing.T) {
		// 11 years 8 months counts as 12.
		ctx := privateEmployee(30000, time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC))
		asOf := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
		r := &domain.RetrenchmentCompensation{Amount: decimal.NewMoneyFromInt(200000)}

		// 15 days salary per year: 30000/2 * 12 = 180000.
		got := rc.Retrenchment(r, &ctx, asOf)
		assert.True(t, decimal.NewMoneyFromInt(20000).Equal(got), "got %s", got)
	})
}

func TestPensionTaxation(t *testing.T) {
	rc := NewRetirementBenefitCalculator(domain.DefaultStatutoryConfig().Exemptions)
	ctx := privateEmployee(60000, time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		pension  domain.Pension
		govt     bool
		expected decimal.Money
	}{
		{
			name:     "uncommuted pension fully taxable",
			pension:  domain.Pension{UncommutedAmount: decimal.NewMoneyFromInt(360000)},
			expected: decimal.NewMoneyFromInt(360000),
		},
		{
			name: "commuted with gratuity exempts one third",
			pension: domain.Pension{
				CommutedAmount:   decimal.NewMoneyFromInt(900000),
				GratuityReceived: true,
			},
			expected: decimal.NewMoneyFromInt(600000),
		},
		{
			name:     "commuted without gratuity exempts one half",
			pension:  domain.Pension{CommutedAmount: decimal.NewMoneyFromInt(900000)},
			expected: decimal.NewMoneyFromInt(450000),
		},
		{
			name:     "government commuted pension fully exempt",
			pension:  domain.Pension{CommutedAmount: decimal.NewMoneyFromInt(900000)},
			govt:     true,
			expected: decimal.Zero(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ctx
			c.IsGovernmentEmployee = tt.govt
			got := rc.Pension(&tt.pension, &c)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}
