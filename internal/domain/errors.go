package domain

import "fmt"

// ValidationError reports malformed or out-of-range declared input. It is
// raised before any computation starts.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MissingPrerequisiteError reports an absent record the calculation cannot
// proceed without. It must reach the caller as a typed failure; substituting
// a zero record would silently misstate tax liability.
type MissingPrerequisiteError struct {
	Resource   string
	EmployeeID string
	FiscalYear string
}

func (e *MissingPrerequisiteError) Error() string {
	if e.FiscalYear != "" {
		return fmt.Sprintf("no %s for employee %s in %s", e.Resource, e.EmployeeID, e.FiscalYear)
	}
	return fmt.Sprintf("no %s for employee %s", e.Resource, e.EmployeeID)
}

// DomainRuleError reports an impossible business state, e.g. a
// government-employee exemption claimed by a private-sector employee.
type DomainRuleError struct {
	Rule   string
	Reason string
}

func (e *DomainRuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Reason)
}
