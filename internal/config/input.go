package config

import (
	"fmt"
	"os"

	"github.com/taxkit/payroll-calculator/internal/calculation"
	"github.com/taxkit/payroll-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of declared-income and statutory rate files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRecord loads a taxation record from a YAML file and validates it.
func (ip *InputParser) LoadRecord(filename string) (*domain.TaxationRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var record domain.TaxationRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := calculation.ValidateRecord(&record); err != nil {
		return nil, fmt.Errorf("record validation failed: %w", err)
	}

	return &record, nil
}

// LoadStatutoryConfig loads the statutory rate tables from a YAML file,
// falling back to the built-in defaults when filename is empty.
func (ip *InputParser) LoadStatutoryConfig(filename string) (*domain.StatutoryConfig, error) {
	if filename == "" {
		return domain.DefaultStatutoryConfig(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.StatutoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateStatutoryConfig(&cfg); err != nil {
		return nil, fmt.Errorf("statutory config validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateStatutoryConfig checks the loaded rate tables for the structural
// properties the calculators rely on.
func (ip *InputParser) ValidateStatutoryConfig(cfg *domain.StatutoryConfig) error {
	if cfg.FiscalYear == "" {
		return fmt.Errorf("fiscal year is required")
	}
	if err := ip.validateRegime("old_regime", &cfg.OldRegime); err != nil {
		return err
	}
	if err := ip.validateRegime("new_regime", &cfg.NewRegime); err != nil {
		return err
	}
	if cfg.Exemptions.SeniorAgeThreshold <= 0 {
		return fmt.Errorf("exemptions: senior age threshold must be positive")
	}
	if len(cfg.Payroll.ProfessionalTaxSlabs) == 0 {
		return fmt.Errorf("payroll: professional tax slabs are required")
	}
	return nil
}

func (ip *InputParser) validateRegime(name string, rc *domain.RegimeConfig) error {
	if len(rc.Slabs) == 0 {
		return fmt.Errorf("%s: at least one slab is required", name)
	}
	prev := rc.Slabs[0]
	for i, slab := range rc.Slabs[1:] {
		if !slab.Lower.GreaterThan(prev.Upper) {
			return fmt.Errorf("%s: slab %d lower bound must exceed the previous upper bound", name, i+1)
		}
		prev = slab
	}
	prevThreshold := domain.SurchargeBand{}
	for i, band := range rc.SurchargeBands {
		if i > 0 && !band.Threshold.GreaterThan(prevThreshold.Threshold) {
			return fmt.Errorf("%s: surcharge bands must have ascending thresholds", name)
		}
		prevThreshold = band
	}
	if rc.CessRate.IsNegative() {
		return fmt.Errorf("%s: cess rate must not be negative", name)
	}
	return nil
}
