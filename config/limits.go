package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed limits.yaml
var defaultLimitsYAML []byte

// ErrOutOfRange is wrapped by Field.Check failures.
var ErrOutOfRange = errors.New("value out of range")

// Field describes one numeric input control.
type Field struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Default float64 `yaml:"default" json:"default"`
	Step    float64 `yaml:"step" json:"step"`
}

// Check reports whether v lies within [Min, Max].
func (f Field) Check(name string, v float64) error {
	if v < f.Min || v > f.Max {
		return fmt.Errorf("%w: %s must be between %g and %g, got %g", ErrOutOfRange, name, f.Min, f.Max, v)
	}
	return nil
}

func (f Field) validate(name string) error {
	if f.Min > f.Max {
		return fmt.Errorf("limits: %s has min %g above max %g", name, f.Min, f.Max)
	}
	if f.Default < f.Min || f.Default > f.Max {
		return fmt.Errorf("limits: %s default %g outside [%g, %g]", name, f.Default, f.Min, f.Max)
	}
	if f.Step <= 0 {
		return fmt.Errorf("limits: %s step must be positive", name)
	}
	return nil
}

type CapitalGainsLimits struct {
	InitialInvestment Field `yaml:"initial_investment" json:"initial_investment"`
	Years             Field `yaml:"years" json:"years"`
	AnnualInvestment  Field `yaml:"annual_investment" json:"annual_investment"`
	InflationPercent  Field `yaml:"inflation_percent" json:"inflation_percent"`
	ReturnPercent     Field `yaml:"return_percent" json:"return_percent"`
}

type LoanLimits struct {
	Principal   Field `yaml:"principal" json:"principal"`
	RatePercent Field `yaml:"rate_percent" json:"rate_percent"`
	Years       Field `yaml:"years" json:"years"`
}

type WithdrawalPlanLimits struct {
	InitialInvestment Field `yaml:"initial_investment" json:"initial_investment"`
	WithdrawalPercent Field `yaml:"withdrawal_percent" json:"withdrawal_percent"`
	Years             Field `yaml:"years" json:"years"`
	ReturnPercent     Field `yaml:"return_percent" json:"return_percent"`
}

// Limits is the full table of calculator input controls.
type Limits struct {
	CapitalGains   CapitalGainsLimits   `yaml:"capital_gains" json:"capital_gains"`
	Loan           LoanLimits           `yaml:"loan" json:"loan"`
	WithdrawalPlan WithdrawalPlanLimits `yaml:"swp" json:"swp"`
}

// DefaultLimits returns the embedded limits table.
func DefaultLimits() *Limits {
	limits, err := ParseLimits(defaultLimitsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded limits.yaml is invalid: %v", err))
	}
	return limits
}

// LoadLimits reads a limits table from path, or the embedded one when
// path is empty.
func LoadLimits(path string) (*Limits, error) {
	if path == "" {
		return DefaultLimits(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read limits file: %w", err)
	}
	return ParseLimits(data)
}

// ParseLimits decodes and validates a YAML limits table.
func ParseLimits(data []byte) (*Limits, error) {
	var limits Limits
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return nil, fmt.Errorf("failed to parse limits: %w", err)
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &limits, nil
}

// Validate checks every field for a consistent range, default and step.
func (l *Limits) Validate() error {
	fields := map[string]Field{
		"capital_gains.initial_investment": l.CapitalGains.InitialInvestment,
		"capital_gains.years":              l.CapitalGains.Years,
		"capital_gains.annual_investment":  l.CapitalGains.AnnualInvestment,
		"capital_gains.inflation_percent":  l.CapitalGains.InflationPercent,
		"capital_gains.return_percent":     l.CapitalGains.ReturnPercent,
		"loan.principal":                   l.Loan.Principal,
		"loan.rate_percent":                l.Loan.RatePercent,
		"loan.years":                       l.Loan.Years,
		"swp.initial_investment":           l.WithdrawalPlan.InitialInvestment,
		"swp.withdrawal_percent":           l.WithdrawalPlan.WithdrawalPercent,
		"swp.years":                        l.WithdrawalPlan.Years,
		"swp.return_percent":               l.WithdrawalPlan.ReturnPercent,
	}
	for name, field := range fields {
		if err := field.validate(name); err != nil {
			return err
		}
	}
	return nil
}
