package domain

// NamedProjection is a projection entry in a scenario file.
type NamedProjection struct {
	Name            string `yaml:"name" json:"name"`
	ProjectionInput `yaml:",inline" json:",inline"`
}

// NamedTargetPrice is a target-price entry in a scenario file.
type NamedTargetPrice struct {
	Name             string `yaml:"name" json:"name"`
	TargetPriceQuery `yaml:",inline" json:",inline"`
}

// NamedTrade is a trade entry in a scenario file.
type NamedTrade struct {
	Name       string `yaml:"name" json:"name"`
	TradeInput `yaml:",inline" json:",inline"`
}

// NamedGoal is a goal entry in a scenario file.
type NamedGoal struct {
	Name      string `yaml:"name" json:"name"`
	GoalInput `yaml:",inline" json:",inline"`
}

// ScenarioFile is the top-level YAML document accepted by the batch command.
type ScenarioFile struct {
	Name         string             `yaml:"name" json:"name"`
	Locale       string             `yaml:"locale,omitempty" json:"locale,omitempty"`
	Currency     string             `yaml:"currency,omitempty" json:"currency,omitempty"`
	Projections  []NamedProjection  `yaml:"projections,omitempty" json:"projections,omitempty"`
	TargetPrices []NamedTargetPrice `yaml:"target_prices,omitempty" json:"target_prices,omitempty"`
	Trades       []NamedTrade       `yaml:"trades,omitempty" json:"trades,omitempty"`
	Goals        []NamedGoal        `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// Empty reports whether the file defines no calculations at all.
func (s *ScenarioFile) Empty() bool {
	return len(s.Projections) == 0 && len(s.TargetPrices) == 0 && len(s.Trades) == 0 && len(s.Goals) == 0
}

// ProjectionOutcome pairs a named projection with its result or error text.
type ProjectionOutcome struct {
	Name   string            `json:"name"`
	Input  ProjectionInput   `json:"input"`
	Result *ProjectionResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// TargetPriceOutcome pairs a named query with its solver outcome.
type TargetPriceOutcome struct {
	Name   string             `json:"name"`
	Query  TargetPriceQuery   `json:"query"`
	Result *TargetPriceResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// TradeOutcome pairs a named trade with its analysis.
type TradeOutcome struct {
	Name   string       `json:"name"`
	Input  TradeInput   `json:"input"`
	Result *TradeResult `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// GoalOutcome pairs a named goal with its analysis.
type GoalOutcome struct {
	Name   string      `json:"name"`
	Input  GoalInput   `json:"input"`
	Result *GoalResult `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// BatchResults collects every outcome of a scenario file run.
type BatchResults struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Locale       string               `json:"locale"`
	Currency     string               `json:"currency"`
	Projections  []ProjectionOutcome  `json:"projections,omitempty"`
	TargetPrices []TargetPriceOutcome `json:"target_prices,omitempty"`
	Trades       []TradeOutcome       `json:"trades,omitempty"`
	Goals        []GoalOutcome        `json:"goals,omitempty"`
}

// FailureCount returns how many entries ended in an error.
func (b *BatchResults) FailureCount() int {
	n := 0
	for _, p := range b.Projections {
		if p.Error != "" {
			n++
		}
	}
	for _, t := range b.TargetPrices {
		if t.Error != "" {
			n++
		}
	}
	for _, t := range b.Trades {
		if t.Error != "" {
			n++
		}
	}
	for _, g := range b.Goals {
		if g.Error != "" {
			n++
		}
	}
	return n
}
