package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taxkit/payroll-calculator/internal/calculation"
	"github.com/taxkit/payroll-calculator/internal/config"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"github.com/taxkit/payroll-calculator/internal/output"
	"github.com/taxkit/payroll-calculator/internal/payroll"
)

var (
	inputFile     string
	statutoryFile string
	formatName    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taxcalc",
		Short: "Statutory income-tax and payout calculator",
		Long: `taxcalc computes an employee's annual statutory income-tax liability
from declared income components and projects prorated monthly payouts.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "taxation record YAML file (required)")
	rootCmd.PersistentFlags().StringVar(&statutoryFile, "statutory", "", "statutory rate tables YAML file (defaults to built-in tables)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format: console or json")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.AddCommand(newCalculateCmd())
	rootCmd.AddCommand(newPayoutCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCalculateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calculate",
		Short: "Compute the annual tax breakdown for a taxation record",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, record, formatter, err := setup()
			if err != nil {
				return err
			}

			breakdown, err := engine.CalculateTotalTax(record)
			if err != nil {
				return err
			}

			data, err := formatter.Format(breakdown)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func newPayoutCmd() *cobra.Command {
	var month, year, lwpDays int

	cmd := &cobra.Command{
		Use:   "payout",
		Short: "Project the prorated net payout for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, record, formatter, err := setup()
			if err != nil {
				return err
			}

			projector := payroll.NewProjector(
				recordEmployeeStore{record},
				recordTaxationStore{record},
				flagAttendance{lwpDays},
				engine,
			)

			projection, err := projector.ComputeMonthlyPayout(record.EmployeeID, month, year)
			if err != nil {
				return err
			}

			data, err := formatter.FormatPayout(projection)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "calendar month 1-12 (required)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "calendar year (required)")
	cmd.Flags().IntVar(&lwpDays, "lwp", 0, "leave-without-pay days in the month")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func setup() (*calculation.TaxEngine, *domain.TaxationRecord, output.Formatter, error) {
	parser := config.NewInputParser()

	statutory, err := parser.LoadStatutoryConfig(statutoryFile)
	if err != nil {
		return nil, nil, nil, err
	}

	record, err := parser.LoadRecord(inputFile)
	if err != nil {
		return nil, nil, nil, err
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return nil, nil, nil, fmt.Errorf("unknown output format %q", formatName)
	}

	return calculation.NewTaxEngineWithConfig(statutory), record, formatter, nil
}

// The standalone CLI serves its stores straight from the loaded record; in
// the backend these are repository-backed.

type recordEmployeeStore struct{ record *domain.TaxationRecord }

func (s recordEmployeeStore) GetEmployee(id string) (*payroll.Employee, error) {
	if id != s.record.EmployeeID {
		return nil, nil
	}
	return &payroll.Employee{
		ID:            id,
		DateOfJoining: s.record.Context.DateOfJoining,
		DateOfLeaving: s.record.Context.DateOfLeaving,
	}, nil
}

type recordTaxationStore struct{ record *domain.TaxationRecord }

func (s recordTaxationStore) GetRecord(employeeID, fiscalYear string) (*domain.TaxationRecord, error) {
	if employeeID != s.record.EmployeeID || fiscalYear != s.record.FiscalYear {
		return nil, nil
	}
	return s.record, nil
}

func (s recordTaxationStore) SaveBreakdown(b *domain.TaxBreakdown) error { return nil }

type flagAttendance struct{ lwpDays int }

func (a flagAttendance) GetLWPDays(employeeID string, month, year int) (int, error) {
	return a.lwpDays, nil
}
