package config

import (
	"fmt"
	"os"

	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/pkg/locale"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file from YAML (JSON is accepted as a YAML subset)
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents.
func (ip *InputParser) Parse(data []byte) (*domain.ScenarioFile, error) {
	var file domain.ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &file, nil
}

// ValidateConfiguration checks the shape of a scenario file. Numeric ranges
// are checked per entry by the calculation engine.
func (ip *InputParser) ValidateConfiguration(file *domain.ScenarioFile) error {
	if file.Empty() {
		return fmt.Errorf("no calculations provided")
	}

	if _, err := locale.New(file.Locale, file.Currency); err != nil {
		return fmt.Errorf("report locale: %w", err)
	}

	names := make([]string, 0, len(file.Projections))
	for _, p := range file.Projections {
		names = append(names, p.Name)
	}
	if err := validateNames("projections", names); err != nil {
		return err
	}

	names = names[:0]
	for _, q := range file.TargetPrices {
		names = append(names, q.Name)
	}
	if err := validateNames("target_prices", names); err != nil {
		return err
	}

	names = names[:0]
	for _, tr := range file.Trades {
		names = append(names, tr.Name)
	}
	if err := validateNames("trades", names); err != nil {
		return err
	}

	names = names[:0]
	for _, g := range file.Goals {
		names = append(names, g.Name)
	}
	return validateNames("goals", names)
}

// validateNames requires every entry in a section to carry a unique name
func validateNames(section string, names []string) error {
	seen := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return fmt.Errorf("%s[%d]: name is required", section, i)
		}
		if prev, dup := seen[n]; dup {
			return fmt.Errorf("%s[%d]: duplicate name %q (first used at index %d)", section, i, n, prev)
		}
		seen[n] = i
	}
	return nil
}

// CreateExampleScenarioFile creates an example scenario file for users to start from
func (ip *InputParser) CreateExampleScenarioFile() *domain.ScenarioFile {
	return &domain.ScenarioFile{
		Name:     "Household plan",
		Locale:   locale.DefaultLocale,
		Currency: locale.DefaultCurrency,
		Projections: []domain.NamedProjection{
			{
				Name: "Index fund",
				ProjectionInput: domain.ProjectionInput{
					Principal:                 10000,
					PeriodicContribution:      500,
					AnnualRatePercent:         7,
					CompoundingPeriodsPerYear: 12,
					Years:                     10,
					InflationRatePercent:      3,
				},
			},
		},
		TargetPrices: []domain.NamedTargetPrice{
			{
				Name: "ACME exit",
				TargetPriceQuery: domain.TargetPriceQuery{
					BuyPrice:                50,
					Shares:                  100,
					DesiredNetProfit:        1000,
					BrokerageFeeRatePercent: 0.5,
					TaxRatePercent:          15,
				},
			},
		},
		Trades: []domain.NamedTrade{
			{
				Name: "ACME round trip",
				TradeInput: domain.TradeInput{
					BuyPrice:                50,
					SellPrice:               62,
					Shares:                  100,
					BrokerageFeeRatePercent: 0.5,
					HoldingDays:             200,
					Country:                 "US",
				},
			},
		},
		Goals: []domain.NamedGoal{
			{
				Name: "House deposit",
				GoalInput: domain.GoalInput{
					ProjectionInput: domain.ProjectionInput{
						Principal:                 5000,
						PeriodicContribution:      400,
						AnnualRatePercent:         4,
						CompoundingPeriodsPerYear: 12,
						Years:                     5,
					},
					TargetAmount: 40000,
				},
			},
		},
	}
}

// MarshalScenarioFile renders a scenario file as YAML.
func MarshalScenarioFile(file *domain.ScenarioFile) ([]byte, error) {
	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}
