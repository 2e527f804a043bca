package output

import (
	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/pkg/decimal"
)

// Summary holds the headline facts of a batch run.
type Summary struct {
	Entries  int
	Failures int

	BestProjection   string
	BestFutureValue  float64
	TotalFutureValue decimal.Money


	BestTrade     string
	BestTradeNet  float64
	TotalTradeNet decimal.Money

	GoalsReached int
	GoalsTotal   int

	UnconvergedTargets int
}

// Summarize picks the strongest projection and trade, totals both in decimal
// and tallies goals. Ties keep the earlier entry.
func Summarize(results *domain.BatchResults) Summary {
	s := Summary{Failures: results.FailureCount()}
	s.Entries = len(results.Projections) + len(results.TargetPrices) + len(results.Trades) + len(results.Goals)

	for _, p := range results.Projections {
		if p.Result == nil {
			continue
		}
		s.TotalFutureValue = s.TotalFutureValue.Add(decimal.NewMoney(p.Result.FutureValue))
		if s.BestProjection == "" || p.Result.FutureValue > s.BestFutureValue {
			s.BestProjection, s.BestFutureValue = p.Name, p.Result.FutureValue
		}
	}
	for _, t := range results.Trades {
		if t.Result == nil {
			continue
		}
		s.TotalTradeNet = s.TotalTradeNet.Add(decimal.NewMoney(t.Result.NetProfit))
		if s.BestTrade == "" || t.Result.NetProfit > s.BestTradeNet {
			s.BestTrade, s.BestTradeNet = t.Name, t.Result.NetProfit
		}
	}
	for _, q := range results.TargetPrices {
		if q.Result != nil && !q.Result.Converged {
			s.UnconvergedTargets++
		}
	}
	for _, g := range results.Goals {
		if g.Result == nil {
			continue
		}
		s.GoalsTotal++
		if g.Result.Reached {
			s.GoalsReached++
		}
	}
	return s
}
