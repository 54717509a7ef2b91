package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

func TestSlabTaxOldRegime(t *testing.T) {
	cfg := domain.DefaultStatutoryConfig()
	calculator := NewSlabCalculator(cfg.OldRegime.Slabs)

	tests := []struct {
		name        string
		income      decimal.Money
		expectedTax decimal.Money
	}{
		{
			name:        "zero income",
			income:      decimal.Zero(),
			expectedTax: decimal.Zero(),
		},
		{
			name:        "income inside the zero-rate bracket",
			income:      decimal.NewMoneyFromInt(250000),
			expectedTax: decimal.Zero(),
		},
		{
			name:        "exactly at the second bracket upper bound",
			income:      decimal.NewMoneyFromInt(500000),
			expectedTax: decimal.NewMoneyFromInt(12500), // 5% of the full 2.5L span
		},
		{
			name:        "spanning three brackets",
			income:      decimal.NewMoneyFromInt(1000000),
			expectedTax: decimal.NewMoneyFromInt(112500), // 12500 + 20% * 5L
		},
		{
			name:        "into the top bracket",
			income:      decimal.NewMoneyFromInt(1500000),
			expectedTax: decimal.NewMoneyFromInt(262500), // 112500 + 30% * 5L
		},
		{
			name:        "negative income is not taxed",
			income:      decimal.NewMoneyFromInt(-100),
			expectedTax: decimal.Zero(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculator.Calculate(tt.income)
			assert.True(t, tt.expectedTax.Equal(got),
				"income %s: expected %s, got %s", tt.income, tt.expectedTax, got)
		})
	}
}

func TestSlabTaxNewRegime(t *testing.T) {
	cfg := domain.DefaultStatutoryConfig()
	calculator := NewSlabCalculator(cfg.NewRegime.Slabs)

	tests := []struct {
		name        string
		income      decimal.Money
		expectedTax decimal.Money
	}{
		{
			name:        "below the exempt bound",
			income:      decimal.NewMoneyFromInt(300000),
			expectedTax: decimal.Zero(),
		},
		{
			name:        "at the rebate threshold",
			income:      decimal.NewMoneyFromInt(700000),
			expectedTax: decimal.NewMoneyFromInt(20000), // 5% * 4L
		},
		{
			name:        "spanning every bracket",
			income:      decimal.NewMoneyFromInt(1600000),
			expectedTax: decimal.NewMoneyFromInt(170000), // 20000 + 30000 + 30000 + 60000 + 30% * 1L
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculator.Calculate(tt.income)
			assert.True(t, tt.expectedTax.Equal(got),
				"income %s: expected %s, got %s", tt.income, tt.expectedTax, got)
		})
	}
}
