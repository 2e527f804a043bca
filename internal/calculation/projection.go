package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/calckit/internal/domain"
)

// MaxProjectionPeriods bounds ceil(years) * compounding periods per year.
const MaxProjectionPeriods = 1_000_000

// ValidateProjectionInput checks the input record without running it.
func ValidateProjectionInput(in domain.ProjectionInput) error {
	switch {
	case !finite(in.Principal) || in.Principal < 0:
		return invalid("principal", "must be a finite non-negative number")
	case !finite(in.PeriodicContribution) || in.PeriodicContribution < 0:
		return invalid("monthly_contribution", "must be a finite non-negative number")
	case !finite(in.AnnualRatePercent) || in.AnnualRatePercent < 0:
		return invalid("annual_rate_percent", "must not be negative")
	case !finite(in.InflationRatePercent) || in.InflationRatePercent < 0:
		return invalid("inflation_rate_percent", "must not be negative")
	case !finite(in.ContributionGrowthRatePercent) || in.ContributionGrowthRatePercent < 0:
		return invalid("contribution_growth_rate_percent", "must not be negative")
	case !finite(in.Years) || in.Years <= 0:
		return invalid("years", "must be positive")
	case in.CompoundingPeriodsPerYear <= 0:
		return invalid("compounding_periods_per_year", "must be positive")
	}

	periods := math.Ceil(in.Years) * float64(in.CompoundingPeriodsPerYear)
	if periods > MaxProjectionPeriods {
		return fmt.Errorf("%w: %.0f compounding periods exceeds limit of %d", ErrInputTooLarge, periods, MaxProjectionPeriods)
	}
	return nil
}

// Project compounds the principal and monthly contributions over the horizon
// and returns the yearly ledger with summary statistics.
//
// Within each compounding period interest is credited before that period's
// contribution share (contribution * 12 / n) is added. A fractional final
// year runs (years - (year-1)) * n periods, counted with an integer loop, so
// the fractional part of that count is dropped. Inputs whose values overflow
// float64 are rejected with ErrInputTooLarge.
func (ce *CalculationEngine) Project(in domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := ValidateProjectionInput(in); err != nil {
		return nil, err
	}

	n := float64(in.CompoundingPeriodsPerYear)
	annualRate := in.AnnualRatePercent / 100
	inflation := in.InflationRatePercent / 100
	growth := in.ContributionGrowthRatePercent / 100
	periodRate := annualRate / n
	baseShare := in.PeriodicContribution * (12 / n)
	totalYears := int(math.Ceil(in.Years))

	balance := in.Principal
	totalContributions := in.Principal
	ledger := make([]domain.YearRecord, 0, totalYears)

	for year := 1; year <= totalYears; year++ {
		partial := float64(year) > in.Years
		periodsInYear := n
		if partial {
			periodsInYear = (in.Years - float64(year-1)) * n
		}

		share := baseShare
		if growth > 0 {
			share = baseShare * math.Pow(1+growth, float64(year-1))
		}

		start := balance
		var interest, contributed float64
		for period := 1; float64(period) <= periodsInYear; period++ {
			earned := balance * periodRate
			balance += earned
			interest += earned

			if share > 0 {
				balance += share
				contributed += share
			}
		}
		totalContributions += contributed
		if !finite(balance) {
			return nil, fmt.Errorf("%w: balance overflows in year %d", ErrInputTooLarge, year)
		}

		ledger = append(ledger, domain.YearRecord{
			Year:                    year,
			StartBalance:            start,
			Contributions:           contributed,
			InterestEarned:          interest,
			EndBalance:              balance,
			CumulativeContributions: totalContributions,
			RealValue:               balance / math.Pow(1+inflation, float64(year)),
			Partial:                 partial,
		})
	}

	result := &domain.ProjectionResult{
		FutureValue:        balance,
		TotalContributions: totalContributions,
		TotalGrowth:        balance - totalContributions,
		RealValue:          balance / math.Pow(1+inflation, in.Years),
		YearlyBreakdown:    ledger,
	}
	if totalContributions > 0 {
		result.AverageAnnualReturn = math.Pow(balance/totalContributions, 1/in.Years) - 1
	}
	result.InflationAdjustedGains = result.RealValue - totalContributions
	for _, v := range []float64{result.TotalGrowth, result.RealValue, result.AverageAnnualReturn, result.InflationAdjustedGains} {
		if !finite(v) {
			return nil, fmt.Errorf("%w: projected values overflow", ErrInputTooLarge)
		}
	}

	ce.logger().Debugf("projection: %d years, future value %.2f, contributions %.2f",
		totalYears, result.FutureValue, result.TotalContributions)
	return result, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
