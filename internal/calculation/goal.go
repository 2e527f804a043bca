package calculation

import (
	"errors"
	"math"

	"github.com/rpgo/calckit/internal/domain"
)

// MaxGoalYears is the shortest time-to-goal search. Longer input horizons
// are searched in full.
const MaxGoalYears = 50

// AnalyzeGoal reports how long the input plan takes to reach TargetAmount
// and the level monthly contribution that would reach it within the input
// horizon. The search runs for the longer of MaxGoalYears and the horizon,
// limited to what MaxProjectionPeriods allows at the input compounding.
func (ce *CalculationEngine) AnalyzeGoal(in domain.GoalInput) (*domain.GoalResult, error) {
	if !finite(in.TargetAmount) || in.TargetAmount <= 0 {
		return nil, invalid("target_amount", "must be positive")
	}

	horizon, err := ce.Project(in.ProjectionInput)
	if err != nil {
		return nil, err
	}

	res := &domain.GoalResult{
		ProjectedValue:              horizon.FutureValue,
		Shortfall:                   math.Max(0, in.TargetAmount-horizon.FutureValue),
		RequiredMonthlyContribution: RequiredMonthlyContribution(in.ProjectionInput, in.TargetAmount),
	}

	if in.Principal >= in.TargetAmount {
		res.Reached = true
		res.BalanceAtGoal = in.Principal
		return res, nil
	}

	years := goalSearchYears(in.ProjectionInput)
	ledger := horizon.YearlyBreakdown
	if float64(years) > in.Years {
		search := in.ProjectionInput
		search.Years = float64(years)
		long, err := ce.Project(search)
		switch {
		case err == nil:
			ledger = long.YearlyBreakdown
		case errors.Is(err, ErrInputTooLarge):
			ce.logger().Debugf("goal search past the horizon overflowed, using the %g year horizon", in.Years)
		default:
			return nil, err
		}
	}

	res.SearchedYears = len(ledger)
	for _, yr := range ledger {
		if yr.EndBalance >= in.TargetAmount {
			res.Reached = true
			res.YearsToGoal = yr.Year
			res.BalanceAtGoal = yr.EndBalance
			break
		}
	}
	if !res.Reached {
		ce.logger().Infof("goal %.2f not reached within %d years", in.TargetAmount, res.SearchedYears)
	}
	return res, nil
}

// goalSearchYears is max(MaxGoalYears, ceil(years)) capped so the search
// stays within MaxProjectionPeriods. in must already be valid.
func goalSearchYears(in domain.ProjectionInput) int {
	years := max(MaxGoalYears, int(math.Ceil(in.Years)))
	return min(years, MaxProjectionPeriods/in.CompoundingPeriodsPerYear)
}

// RequiredMonthlyContribution returns the level monthly amount that grows the
// principal to target over in.Years at the input rate, using the ordinary
// annuity factor. Contribution growth is ignored. The result is never negative.
func RequiredMonthlyContribution(in domain.ProjectionInput, target float64) float64 {
	if in.CompoundingPeriodsPerYear <= 0 || in.Years <= 0 {
		return 0
	}
	n := float64(in.CompoundingPeriodsPerYear)
	i := in.AnnualRatePercent / 100 / n
	periods := n * in.Years

	grown := in.Principal
	factor := periods
	if i > 0 {
		growth := math.Pow(1+i, periods)
		grown = in.Principal * growth
		factor = (growth - 1) / i
	}
	if factor <= 0 {
		return 0
	}
	perPeriod := (target - grown) / factor
	return math.Max(0, perPeriod/(12/n))
}
