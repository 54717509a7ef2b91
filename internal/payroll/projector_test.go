package payroll

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxkit/payroll-calculator/internal/calculation"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

type memEmployeeStore map[string]*Employee

func (s memEmployeeStore) GetEmployee(id string) (*Employee, error) {
	return s[id], nil
}

type memTaxationStore map[string]*domain.TaxationRecord

func (s memTaxationStore) GetRecord(employeeID, fiscalYear string) (*domain.TaxationRecord, error) {
	return s[fmt.Sprintf("%s/%s", employeeID, fiscalYear)], nil
}

func (s memTaxationStore) SaveBreakdown(b *domain.TaxBreakdown) error { return nil }

type fixedAttendance int

func (a fixedAttendance) GetLWPDays(employeeID string, month, year int) (int, error) {
	return int(a), nil
}

func newTestProjector(emp *Employee, record *domain.TaxationRecord, lwp int) *Projector {
	employees := memEmployeeStore{}
	if emp != nil {
		employees[emp.ID] = emp
	}
	taxation := memTaxationStore{}
	if record != nil {
		taxation[fmt.Sprintf("%s/%s", record.EmployeeID, record.FiscalYear)] = record
	}
	return NewProjector(employees, taxation, fixedAttendance(lwp), calculation.NewTaxEngine())
}

func midJuneRecord() (*Employee, *domain.TaxationRecord) {
	joined := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)
	emp := &Employee{ID: "emp-001", DateOfJoining: joined}
	record := &domain.TaxationRecord{
		EmployeeID: "emp-001",
		FiscalYear: "2025-26",
		Regime:     domain.RegimeOld,
		Context: domain.TaxpayerContext{
			Age:           30,
			DateOfJoining: joined,
		},
		Salary: domain.SalaryIncome{
			BasicPay: decimal.NewMoneyFromInt(600000),
		},
	}
	return emp, record
}

func TestFiscalYearFor(t *testing.T) {
	assert.Equal(t, "2025-26", FiscalYearFor(6, 2025))
	assert.Equal(t, "2025-26", FiscalYearFor(4, 2025))
	assert.Equal(t, "2024-25", FiscalYearFor(3, 2025))
	assert.Equal(t, "2024-25", FiscalYearFor(2, 2025))
}

func TestMidMonthJoinProration(t *testing.T) {
	emp, record := midJuneRecord()
	projector := newTestProjector(emp, record, 0)

	// Joining on the 16th of a 30-day month halves every component.
	payout, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
	require.NoError(t, err)

	assert.Equal(t, 15, payout.PeriodDays)
	assert.Equal(t, 30, payout.DaysInMonth)
	assert.True(t, decimal.NewMoneyFromInt(25000).Equal(payout.Basic), "basic got %s", payout.Basic)
	assert.True(t, decimal.NewMoneyFromInt(25000).Equal(payout.GrossPay), "gross got %s", payout.GrossPay)

	// Annual tax on 600000 old regime is 23400; half of one month's slice.
	assert.True(t, decimal.NewMoneyFromInt(975).Equal(payout.IncomeTax), "tax got %s", payout.IncomeTax)
	// EPF on basic+DA against the 15000 wage ceiling.
	assert.True(t, decimal.NewMoneyFromInt(1800).Equal(payout.EPF), "epf got %s", payout.EPF)
	// Prorated gross is above the ESI coverage threshold.
	assert.True(t, payout.ESI.IsZero(), "esi got %s", payout.ESI)
	// Top professional-tax step.
	assert.True(t, decimal.NewMoneyFromInt(200).Equal(payout.ProfessionalTax), "pt got %s", payout.ProfessionalTax)

	assert.True(t, decimal.NewMoneyFromInt(2975).Equal(payout.TotalDeductions),
		"deductions got %s", payout.TotalDeductions)
	assert.True(t, decimal.NewMoneyFromInt(22025).Equal(payout.NetPay), "net got %s", payout.NetPay)
}

func TestLWPReducesThePayPeriod(t *testing.T) {
	emp, record := midJuneRecord()
	emp.DateOfJoining = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	record.Context.DateOfJoining = emp.DateOfJoining

	projector := newTestProjector(emp, record, 6)

	payout, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
	require.NoError(t, err)

	assert.Equal(t, 30, payout.PeriodDays)
	assert.Equal(t, 6, payout.LWPDays)
	// 24 of 30 days paid.
	assert.True(t, decimal.NewMoneyFromInt(40000).Equal(payout.Basic), "basic got %s", payout.Basic)
}

func TestESIAppliesWithinThreshold(t *testing.T) {
	emp, record := midJuneRecord()
	emp.DateOfJoining = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	record.Context.DateOfJoining = emp.DateOfJoining
	record.Salary.BasicPay = decimal.NewMoneyFromInt(240000) // 20000/month

	projector := newTestProjector(emp, record, 0)

	payout, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
	require.NoError(t, err)

	// 0.75% of 20000.
	assert.True(t, decimal.NewMoneyFromInt(150).Equal(payout.ESI), "esi got %s", payout.ESI)
	// Middle professional-tax step does not apply at 20000 gross.
	assert.True(t, decimal.NewMoneyFromInt(200).Equal(payout.ProfessionalTax))
}

func TestProfessionalTaxSteps(t *testing.T) {
	projector := newTestProjector(nil, nil, 0)

	tests := []struct {
		gross    int64
		expected int64
	}{
		{7000, 0},
		{7500, 0},
		{9000, 175},
		{10000, 175},
		{10001, 200},
		{100000, 200},
	}
	for _, tt := range tests {
		got := projector.ProfessionalTax(decimal.NewMoneyFromInt(tt.gross))
		assert.True(t, decimal.NewMoneyFromInt(tt.expected).Equal(got),
			"gross %d: got %s", tt.gross, got)
	}
}

func TestPayoutErrors(t *testing.T) {
	emp, record := midJuneRecord()

	t.Run("unknown employee", func(t *testing.T) {
		projector := newTestProjector(nil, record, 0)
		_, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
		var merr *domain.MissingPrerequisiteError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, "employee master record", merr.Resource)
	})

	t.Run("no taxation record for the fiscal year", func(t *testing.T) {
		projector := newTestProjector(emp, nil, 0)
		_, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
		var merr *domain.MissingPrerequisiteError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, "taxation record", merr.Resource)
		assert.Equal(t, "2025-26", merr.FiscalYear)
	})

	t.Run("month before joining has no overlap", func(t *testing.T) {
		projector := newTestProjector(emp, record, 0)
		_, err := projector.ComputeMonthlyPayout("emp-001", 5, 2025)
		var derr *domain.DomainRuleError
		require.True(t, errors.As(err, &derr), "got %v", err)
	})

	t.Run("left before the requested month", func(t *testing.T) {
		gone := *emp
		gone.DateOfJoining = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		gone.DateOfLeaving = time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
		projector := newTestProjector(&gone, record, 0)

		_, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
		var derr *domain.DomainRuleError
		require.True(t, errors.As(err, &derr))
	})

	t.Run("LWP exceeding the pay period", func(t *testing.T) {
		projector := newTestProjector(emp, record, 20)
		_, err := projector.ComputeMonthlyPayout("emp-001", 6, 2025)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "lwp_days", verr.Field)
	})

	t.Run("month out of range", func(t *testing.T) {
		projector := newTestProjector(emp, record, 0)
		_, err := projector.ComputeMonthlyPayout("emp-001", 13, 2025)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
	})
}
