package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/rpgo/calckit/internal/domain"
)

// CSVSummarizer writes one row per metric per entry (Kind, Name, Metric, Value, Error).
// Entries are sorted by name within each kind.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.BatchResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Kind", "Name", "Metric", "Value", "Error"}); err != nil {
		return nil, err
	}

	var rows [][]string
	add := func(kind, name string, metrics [][2]string, errText string) {
		if errText != "" {
			rows = append(rows, []string{kind, name, "", "", errText})
			return
		}
		for _, m := range metrics {
			rows = append(rows, []string{kind, name, m[0], m[1], ""})
		}
	}

	projections := append([]domain.ProjectionOutcome(nil), results.Projections...)
	sort.SliceStable(projections, func(i, j int) bool { return projections[i].Name < projections[j].Name })
	for _, p := range projections {
		var m [][2]string
		if r := p.Result; r != nil {
			m = [][2]string{
				{"future_value", FormatMoney(r.FutureValue)},
				{"total_contributions", FormatMoney(r.TotalContributions)},
				{"total_growth", FormatMoney(r.TotalGrowth)},
				{"average_annual_return_percent", decimalString(r.AverageAnnualReturn * 100)},
				{"real_value", FormatMoney(r.RealValue)},
				{"inflation_adjusted_gains", FormatMoney(r.InflationAdjustedGains)},
			}
		}
		add("projection", p.Name, m, p.Error)
	}

	targets := append([]domain.TargetPriceOutcome(nil), results.TargetPrices...)
	sort.SliceStable(targets, func(i, j int) bool { return targets[i].Name < targets[j].Name })
	for _, q := range targets {
		var m [][2]string
		if r := q.Result; r != nil {
			m = [][2]string{
				{"sell_price", FormatMoney(r.SellPrice)},
				{"net_profit", FormatMoney(r.NetProfit)},
				{"converged", boolToString(r.Converged)},
				{"iterations", intToString(r.Iterations)},
			}
		}
		add("target_price", q.Name, m, q.Error)
	}

	trades := append([]domain.TradeOutcome(nil), results.Trades...)
	sort.SliceStable(trades, func(i, j int) bool { return trades[i].Name < trades[j].Name })
	for _, t := range trades {
		var m [][2]string
		if r := t.Result; r != nil {
			m = [][2]string{
				{"total_cost", FormatMoney(r.TotalCost)},
				{"total_revenue", FormatMoney(r.TotalRevenue)},
				{"gross_profit", FormatMoney(r.GrossProfit)},
				{"brokerage_fees", FormatMoney(r.BrokerageFees)},
				{"taxes", FormatMoney(r.Taxes)},
				{"net_profit", FormatMoney(r.NetProfit)},
				{"profit_percentage", decimalString(r.ProfitPercentage)},
				{"annualized_return_percent", decimalString(r.AnnualizedReturnPercent)},
				{"break_even_price", decimalString(r.BreakEvenPrice)},
			}
		}
		add("trade", t.Name, m, t.Error)
	}

	goals := append([]domain.GoalOutcome(nil), results.Goals...)
	sort.SliceStable(goals, func(i, j int) bool { return goals[i].Name < goals[j].Name })
	for _, g := range goals {
		var m [][2]string
		if r := g.Result; r != nil {
			m = [][2]string{
				{"reached", boolToString(r.Reached)},
				{"years_to_goal", intToString(r.YearsToGoal)},
				{"projected_value", FormatMoney(r.ProjectedValue)},
				{"shortfall", FormatMoney(r.Shortfall)},
				{"required_monthly_contribution", FormatMoney(r.RequiredMonthlyContribution)},
			}
		}
		add("goal", g.Name, m, g.Error)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decimalString renders a non-monetary value with up to four decimals.
func decimalString(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
