package domain

import (
	"time"

	"github.com/taxkit/payroll-calculator/pkg/dateutil"
	"github.com/taxkit/payroll-calculator/pkg/decimal"
)

// TaxpayerContext carries the employee facts the statutory rules depend on.
// It is supplied per calculation call and never mutated by the engine.
type TaxpayerContext struct {
	Age                    int           `yaml:"age" json:"age"`
	IsGovernmentEmployee   bool          `yaml:"is_government_employee" json:"is_government_employee"`
	IsDeceased             bool          `yaml:"is_deceased,omitempty" json:"is_deceased,omitempty"`
	LivesInMetroCity       bool          `yaml:"lives_in_metro_city,omitempty" json:"lives_in_metro_city,omitempty"`
	DateOfJoining          time.Time     `yaml:"date_of_joining" json:"date_of_joining"`
	DateOfLeaving          time.Time     `yaml:"date_of_leaving,omitempty" json:"date_of_leaving,omitempty"`
	LastDrawnMonthlySalary decimal.Money `yaml:"last_drawn_monthly_salary,omitempty" json:"last_drawn_monthly_salary,omitempty"`
}

// serviceEnd returns the date service is measured up to: the leaving date
// when set, otherwise the supplied fallback (normally the fiscal year end).
func (c *TaxpayerContext) serviceEnd(fallback time.Time) time.Time {
	if !c.DateOfLeaving.IsZero() {
		return c.DateOfLeaving
	}
	return fallback
}

// CompletedServiceYears returns fully completed years of service as of the
// leaving date, or asOf when still employed.
func (c *TaxpayerContext) CompletedServiceYears(asOf time.Time) int {
	return dateutil.CompletedYearsOfService(c.DateOfJoining, c.serviceEnd(asOf))
}

// ServiceYearsRoundedUp returns service years with a remainder above six
// months counted as a full year.
func (c *TaxpayerContext) ServiceYearsRoundedUp(asOf time.Time) int {
	return dateutil.ServiceYearsRoundedUp(c.DateOfJoining, c.serviceEnd(asOf))
}

// IsSeniorCitizen reports whether the taxpayer has reached the given age
// threshold, which switches the eligible interest exemption section.
func (c *TaxpayerContext) IsSeniorCitizen(threshold int) bool {
	return c.Age >= threshold
}
