package domain

import "fmt"

// TaxRegime selects between the two mutually exclusive statutory computation
// modes. The old regime permits itemized deductions and perquisite
// exemptions; the new regime uses wider slabs with almost none.
type TaxRegime string

const (
	RegimeOld TaxRegime = "old"
	RegimeNew TaxRegime = "new"
)

// ParseRegime converts a string to a TaxRegime
func ParseRegime(s string) (TaxRegime, error) {
	switch TaxRegime(s) {
	case RegimeOld:
		return RegimeOld, nil
	case RegimeNew:
		return RegimeNew, nil
	}
	return "", &ValidationError{Field: "regime", Reason: fmt.Sprintf("unknown regime %q", s)}
}

func (r TaxRegime) String() string {
	return string(r)
}

// IsNew reports whether the new regime is selected. Nearly every perquisite
// and itemized deduction is gated on this.
func (r TaxRegime) IsNew() bool {
	return r == RegimeNew
}
