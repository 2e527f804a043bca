package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/calckit/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	var buf bytes.Buffer
	lf := reportLocale(results)

	fmt.Fprintln(&buf, "CALCULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if results.Name != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", results.Name)
	}
	fmt.Fprintln(&buf)

	for _, p := range results.Projections {
		if p.Result == nil {
			fmt.Fprintf(&buf, "%s: ERROR %s\n", p.Name, p.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: FutureValue=%s Contributions=%s Growth=%s\n",
			p.Name,
			lf.Currency(p.Result.FutureValue),
			lf.Currency(p.Result.TotalContributions),
			lf.Currency(p.Result.TotalGrowth),
		)
	}
	for _, q := range results.TargetPrices {
		if q.Result == nil {
			fmt.Fprintf(&buf, "%s: ERROR %s\n", q.Name, q.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: SellAt=%s Net=%s Converged=%s\n",
			q.Name, lf.Currency(q.Result.SellPrice), lf.Currency(q.Result.NetProfit), yesNo(q.Result.Converged))
	}
	for _, t := range results.Trades {
		if t.Result == nil {
			fmt.Fprintf(&buf, "%s: ERROR %s\n", t.Name, t.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: Net=%s Return=%s\n", t.Name, lf.Currency(t.Result.NetProfit), lf.Percent(t.Result.ProfitPercentage))
	}
	for _, g := range results.Goals {
		if g.Result == nil {
			fmt.Fprintf(&buf, "%s: ERROR %s\n", g.Name, g.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: Reached=%s Years=%d RequiredMonthly=%s\n",
			g.Name, yesNo(g.Result.Reached), g.Result.YearsToGoal, lf.Currency(g.Result.RequiredMonthlyContribution))
	}

	sum := Summarize(results)
	if sum.BestProjection != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Largest projection: %s (%s)\n", sum.BestProjection, lf.Currency(sum.BestFutureValue))
	}
	if sum.Failures > 0 {
		fmt.Fprintf(&buf, "Failed entries: %d\n", sum.Failures)
	}
	return buf.Bytes(), nil
}
