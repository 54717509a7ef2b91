package output

import (
	"github.com/goccy/go-json"

	"github.com/taxkit/payroll-calculator/internal/domain"
)

// JSONFormatter serializes the breakdown as pretty-printed JSON so every
// statutory stage stays independently inspectable downstream.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(b *domain.TaxBreakdown) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

func (JSONFormatter) FormatPayout(p *domain.MonthlySalaryProjection) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
