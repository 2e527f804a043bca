package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/pkg/locale"
)

// ConsoleVerboseFormatter renders every section as a table, including the
// yearly ledger of each projection.
type ConsoleVerboseFormatter struct {
	// Renderer selects the color profile; nil renders plain text.
	Renderer *lipgloss.Renderer
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	var buf bytes.Buffer
	st := newStyles(c.Renderer)
	lf := reportLocale(results)

	title := results.Name
	if title == "" {
		title = "Calculation report"
	}
	fmt.Fprintln(&buf, st.title.Render(strings.ToUpper(title)))
	fmt.Fprintln(&buf, st.muted.Render(fmt.Sprintf("Report %s (%s, %s)", results.ID, lf.Locale(), lf.CurrencyCode())))
	fmt.Fprintln(&buf)

	if len(results.Projections) > 0 {
		writeProjections(&buf, st, lf, results.Projections)
	}
	if len(results.TargetPrices) > 0 {
		writeTargetPrices(&buf, st, lf, results.TargetPrices)
	}
	if len(results.Trades) > 0 {
		writeTrades(&buf, st, lf, results.Trades)
	}
	if len(results.Goals) > 0 {
		writeGoals(&buf, st, lf, results.Goals)
	}

	sum := Summarize(results)
	fmt.Fprintln(&buf, st.title.Render("SUMMARY"))
	fmt.Fprintf(&buf, "Entries: %d  Failed: %d\n", sum.Entries, sum.Failures)
	if sum.BestProjection != "" {
		fmt.Fprintf(&buf, "Largest projection: %s (%s)\n", sum.BestProjection, lf.Currency(sum.BestFutureValue))
		fmt.Fprintf(&buf, "All projections: %s\n", lf.Currency(sum.TotalFutureValue.Round().Float64()))
	}
	if sum.BestTrade != "" {
		fmt.Fprintf(&buf, "Best trade: %s (%s)\n", sum.BestTrade, lf.Currency(sum.BestTradeNet))
		fmt.Fprintf(&buf, "Net across trades: %s\n", lf.Currency(sum.TotalTradeNet.Round().Float64()))
	}
	if sum.GoalsTotal > 0 {
		fmt.Fprintf(&buf, "Goals reached: %d of %d\n", sum.GoalsReached, sum.GoalsTotal)
	}
	if sum.UnconvergedTargets > 0 {
		fmt.Fprintln(&buf, st.bad.Render(fmt.Sprintf("%d target price(s) did not converge", sum.UnconvergedTargets)))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, st.title.Render("KEY ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func errorRow(name, msg string, width int) []string {
	row := make([]string, width)
	row[0] = name
	row[1] = "error: " + msg
	return row
}

func writeProjections(buf *bytes.Buffer, st styles, lf *locale.Formatter, items []domain.ProjectionOutcome) {
	fmt.Fprintln(buf, st.title.Render("PROJECTIONS"))
	headers := []string{"Name", "Future value", "Contributions", "Growth", "Avg return", "Real value"}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		if p.Result == nil {
			rows = append(rows, errorRow(p.Name, p.Error, len(headers)))
			continue
		}
		r := p.Result
		rows = append(rows, []string{
			p.Name,
			lf.Currency(r.FutureValue),
			lf.Currency(r.TotalContributions),
			lf.Currency(r.TotalGrowth),
			lf.Percent(r.AverageAnnualReturn * 100),
			lf.Currency(r.RealValue),
		})
	}
	fmt.Fprintln(buf, st.table(headers, rows))

	for _, p := range items {
		if p.Result == nil || len(p.Result.YearlyBreakdown) == 0 {
			continue
		}
		fmt.Fprintln(buf, st.muted.Render(p.Name+": yearly breakdown"))
		ledger := make([][]string, 0, len(p.Result.YearlyBreakdown))
		for _, y := range p.Result.YearlyBreakdown {
			year := intToString(y.Year)
			if y.Partial {
				year += "*"
			}
			ledger = append(ledger, []string{
				year,
				lf.Currency(y.StartBalance),
				lf.Currency(y.Contributions),
				lf.Currency(y.InterestEarned),
				lf.Currency(y.EndBalance),
				lf.Currency(y.RealValue),
			})
		}
		fmt.Fprintln(buf, st.table([]string{"Year", "Start", "Contributions", "Interest", "End", "Real value"}, ledger))
	}
	fmt.Fprintln(buf)
}

func writeTargetPrices(buf *bytes.Buffer, st styles, lf *locale.Formatter, items []domain.TargetPriceOutcome) {
	fmt.Fprintln(buf, st.title.Render("TARGET SELL PRICES"))
	headers := []string{"Name", "Buy", "Shares", "Desired profit", "Sell at", "Net profit", "Converged"}
	rows := make([][]string, 0, len(items))
	for _, q := range items {
		if q.Result == nil {
			rows = append(rows, errorRow(q.Name, q.Error, len(headers)))
			continue
		}
		conv := yesNo(q.Result.Converged)
		if !q.Result.Converged {
			conv = st.bad.Render(conv)
		}
		rows = append(rows, []string{
			q.Name,
			lf.Currency(q.Query.BuyPrice),
			lf.Number(q.Query.Shares, 0),
			lf.Currency(q.Query.DesiredNetProfit),
			lf.Currency(q.Result.SellPrice),
			lf.Currency(q.Result.NetProfit),
			fmt.Sprintf("%s (%d)", conv, q.Result.Iterations),
		})
	}
	fmt.Fprintln(buf, st.table(headers, rows))
	fmt.Fprintln(buf)
}

func writeTrades(buf *bytes.Buffer, st styles, lf *locale.Formatter, items []domain.TradeOutcome) {
	fmt.Fprintln(buf, st.title.Render("TRADES"))
	headers := []string{"Name", "Net profit", "Return", "Annualized", "Fees", "Taxes", "Break-even"}
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		if t.Result == nil {
			rows = append(rows, errorRow(t.Name, t.Error, len(headers)))
			continue
		}
		r := t.Result
		net := lf.Currency(r.NetProfit)
		if r.NetProfit < 0 {
			net = st.bad.Render(net)
		} else {
			net = st.good.Render(net)
		}
		annual := "-"
		if t.Input.HoldingDays > 0 {
			annual = lf.Percent(r.AnnualizedReturnPercent)
		}
		rows = append(rows, []string{
			t.Name,
			net,
			lf.Percent(r.ProfitPercentage),
			annual,
			lf.Currency(r.BrokerageFees),
			lf.Currency(r.Taxes),
			lf.Currency(r.BreakEvenPrice),
		})
	}
	fmt.Fprintln(buf, st.table(headers, rows))
	fmt.Fprintln(buf)
}

func writeGoals(buf *bytes.Buffer, st styles, lf *locale.Formatter, items []domain.GoalOutcome) {
	fmt.Fprintln(buf, st.title.Render("SAVINGS GOALS"))
	headers := []string{"Name", "Target", "Reached", "Projected", "Shortfall", "Required monthly"}
	rows := make([][]string, 0, len(items))
	for _, g := range items {
		if g.Result == nil {
			rows = append(rows, errorRow(g.Name, g.Error, len(headers)))
			continue
		}
		r := g.Result
		reached := fmt.Sprintf("not within %d years", r.SearchedYears)
		switch {
		case r.Reached && r.YearsToGoal == 0:
			reached = "already"
		case r.Reached:
			reached = fmt.Sprintf("year %d", r.YearsToGoal)
		}
		rows = append(rows, []string{
			g.Name,
			lf.Currency(g.Input.TargetAmount),
			reached,
			lf.Currency(r.ProjectedValue),
			lf.Currency(r.Shortfall),
			lf.Currency(r.RequiredMonthlyContribution),
		})
	}
	fmt.Fprintln(buf, st.table(headers, rows))
	fmt.Fprintln(buf)
}
