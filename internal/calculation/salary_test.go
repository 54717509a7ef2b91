package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

func TestGrossSalary(t *testing.T) {
	sc := NewSalaryCalculator(domain.DefaultStatutoryConfig().Exemptions)

	salary := domain.SalaryIncome{
		BasicPay:           decimal.NewMoneyFromInt(600000),
		DearnessAllowance:  decimal.NewMoneyFromInt(60000),
		HouseRentAllowance: decimal.NewMoneyFromInt(240000),
		SpecialAllowance:   decimal.NewMoneyFromInt(100000),
		Bonus:              decimal.NewMoneyFromInt(50000),
		// Rent paid and professional tax are not salary components.
		RentPaid:            decimal.NewMoneyFromInt(300000),
		ProfessionalTaxPaid: decimal.NewMoneyFromInt(2400),
	}

	got := sc.GrossSalary(&salary)
	assert.True(t, decimal.NewMoneyFromInt(1050000).Equal(got), "got %s", got)
}

func TestHRAExemption(t *testing.T) {
	sc := NewSalaryCalculator(domain.DefaultStatutoryConfig().Exemptions)

	base := domain.SalaryIncome{
		BasicPay:           decimal.NewMoneyFromInt(600000),
		HouseRentAllowance: decimal.NewMoneyFromInt(240000),
		RentPaid:           decimal.NewMoneyFromInt(180000),
	}
	metro := &domain.TaxpayerContext{LivesInMetroCity: true}
	nonMetro := &domain.TaxpayerContext{}

	t.Run("rent less ten percent of basic binds", func(t *testing.T) {
		// min(240000, 180000 - 60000, 300000) = 120000
		got := sc.HRAExemption(&base, domain.RegimeOld, metro)
		assert.True(t, decimal.NewMoneyFromInt(120000).Equal(got), "got %s", got)
	})

	t.Run("non-metro percentage binds", func(t *testing.T) {
		s := base
		s.RentPaid = decimal.NewMoneyFromInt(500000)
		s.HouseRentAllowance = decimal.NewMoneyFromInt(400000)
		// min(400000, 440000, 40% * 600000) = 240000
		got := sc.HRAExemption(&s, domain.RegimeOld, nonMetro)
		assert.True(t, decimal.NewMoneyFromInt(240000).Equal(got), "got %s", got)
	})

	t.Run("no exemption without rent paid", func(t *testing.T) {
		s := base
		s.RentPaid = decimal.Zero()
		got := sc.HRAExemption(&s, domain.RegimeOld, metro)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("no exemption under the new regime", func(t *testing.T) {
		got := sc.HRAExemption(&base, domain.RegimeNew, metro)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestHouseProperty(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultStatutoryConfig().Exemptions)

	t.Run("self-occupied loan interest capped at two lakh", func(t *testing.T) {
		h := domain.HousePropertyIncome{
			SelfOccupied:     true,
			HomeLoanInterest: decimal.NewMoneyFromInt(350000),
		}
		got := ic.HouseProperty(&h, domain.RegimeOld)
		assert.True(t, decimal.NewMoneyFromInt(-200000).Equal(got), "got %s", got)
	})

	t.Run("self-occupied interest not allowed in the new regime", func(t *testing.T) {
		h := domain.HousePropertyIncome{
			SelfOccupied:     true,
			HomeLoanInterest: decimal.NewMoneyFromInt(150000),
		}
		got := ic.HouseProperty(&h, domain.RegimeNew)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("let-out standard deduction and interest", func(t *testing.T) {
		h := domain.HousePropertyIncome{
			AnnualRent:       decimal.NewMoneyFromInt(500000),
			MunicipalTaxes:   decimal.NewMoneyFromInt(20000),
			HomeLoanInterest: decimal.NewMoneyFromInt(100000),
		}
		// NAV 480000, less 30% = 336000, less interest = 236000
		got := ic.HouseProperty(&h, domain.RegimeOld)
		assert.True(t, decimal.NewMoneyFromInt(236000).Equal(got), "got %s", got)
	})

	t.Run("let-out loss set-off capped", func(t *testing.T) {
		h := domain.HousePropertyIncome{
			AnnualRent:       decimal.NewMoneyFromInt(120000),
			HomeLoanInterest: decimal.NewMoneyFromInt(400000),
		}
		// 84000 - 400000 = -316000, floored at -200000
		got := ic.HouseProperty(&h, domain.RegimeOld)
		assert.True(t, decimal.NewMoneyFromInt(-200000).Equal(got), "got %s", got)
	})
}
