package domain

// ProjectionInput describes a savings or investment projection. All rates are
// whole-number percentages (8 means 8%).
type ProjectionInput struct {
	Principal                     float64 `yaml:"principal" json:"principal"`
	PeriodicContribution          float64 `yaml:"monthly_contribution" json:"monthly_contribution"` // Monthly amount
	AnnualRatePercent             float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	CompoundingPeriodsPerYear     int     `yaml:"compounding_periods_per_year" json:"compounding_periods_per_year"`
	Years                         float64 `yaml:"years" json:"years"` // May be fractional
	InflationRatePercent          float64 `yaml:"inflation_rate_percent,omitempty" json:"inflation_rate_percent,omitempty"`
	ContributionGrowthRatePercent float64 `yaml:"contribution_growth_rate_percent,omitempty" json:"contribution_growth_rate_percent,omitempty"`
}

// YearRecord is one row of the yearly ledger.
type YearRecord struct {
	Year                    int     `json:"year"`
	StartBalance            float64 `json:"start_balance"`
	Contributions           float64 `json:"contributions"`
	InterestEarned          float64 `json:"interest_earned"`
	EndBalance              float64 `json:"end_balance"`
	CumulativeContributions float64 `json:"cumulative_contributions"`
	RealValue               float64 `json:"real_value"` // EndBalance discounted by inflation
	Partial                 bool    `json:"partial,omitempty"`
}

// ProjectionResult holds the outcome of a projection run.
type ProjectionResult struct {
	FutureValue            float64 `json:"future_value"`
	TotalContributions     float64 `json:"total_contributions"`
	TotalGrowth            float64 `json:"total_growth"`
	AverageAnnualReturn    float64 `json:"average_annual_return"` // Fraction, 0.08 == 8%
	RealValue              float64 `json:"real_value"`
	InflationAdjustedGains float64 `json:"inflation_adjusted_gains"`

	YearlyBreakdown []YearRecord `json:"yearly_breakdown"`
}

// FinalYear returns the last ledger entry, or false when the ledger is empty.
func (r *ProjectionResult) FinalYear() (YearRecord, bool) {
	if r == nil || len(r.YearlyBreakdown) == 0 {
		return YearRecord{}, false
	}
	return r.YearlyBreakdown[len(r.YearlyBreakdown)-1], true
}

// GoalInput extends a projection with a savings target.
type GoalInput struct {
	ProjectionInput `yaml:",inline" json:",inline"`
	TargetAmount    float64 `yaml:"target_amount" json:"target_amount"`
}

// GoalResult answers "when do I get there" and "what would it take".
type GoalResult struct {
	Reached                     bool    `json:"reached"`
	YearsToGoal                 int     `json:"years_to_goal"` // 0 when not reached within the search horizon
	BalanceAtGoal               float64 `json:"balance_at_goal"`
	RequiredMonthlyContribution float64 `json:"required_monthly_contribution"`
	ProjectedValue              float64 `json:"projected_value"` // Future value over the input horizon
	Shortfall                   float64 `json:"shortfall"`
	SearchedYears               int     `json:"searched_years"` // Length of the time-to-goal search
}
