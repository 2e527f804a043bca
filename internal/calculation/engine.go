package calculation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpgo/calckit/internal/domain"
)

// CalculationEngine runs the financial calculators. It holds no per-call
// state, so one engine can serve any number of sequential or concurrent calls.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunBatch evaluates every entry of a scenario file. Individual failures are
// recorded on the entry; only context cancellation aborts the batch.
func (ce *CalculationEngine) RunBatch(ctx context.Context, file *domain.ScenarioFile) (*domain.BatchResults, error) {
	if file == nil {
		return nil, fmt.Errorf("scenario file is nil")
	}

	results := &domain.BatchResults{
		ID:       uuid.NewString(),
		Name:     file.Name,
		Locale:   file.Locale,
		Currency: file.Currency,
	}
	ce.logger().Infof("running batch %q (%s)", file.Name, results.ID)

	for _, p := range file.Projections {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled: %w", err)
		}
		out := domain.ProjectionOutcome{Name: p.Name, Input: p.ProjectionInput}
		res, err := ce.Project(p.ProjectionInput)
		if err != nil {
			ce.logger().Warnf("projection %q rejected: %v", p.Name, err)
			out.Error = err.Error()
		} else {
			out.Result = res
		}
		results.Projections = append(results.Projections, out)
	}

	for _, q := range file.TargetPrices {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled: %w", err)
		}
		out := domain.TargetPriceOutcome{Name: q.Name, Query: q.TargetPriceQuery}
		res, err := ce.SolveSellPrice(q.TargetPriceQuery)
		if err != nil {
			ce.logger().Warnf("target price %q rejected: %v", q.Name, err)
			out.Error = err.Error()
		} else {
			out.Result = res
		}
		results.TargetPrices = append(results.TargetPrices, out)
	}

	for _, t := range file.Trades {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled: %w", err)
		}
		out := domain.TradeOutcome{Name: t.Name, Input: t.TradeInput}
		res, err := ce.AnalyzeTrade(t.TradeInput)
		if err != nil {
			ce.logger().Warnf("trade %q rejected: %v", t.Name, err)
			out.Error = err.Error()
		} else {
			out.Result = res
		}
		results.Trades = append(results.Trades, out)
	}

	for _, g := range file.Goals {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled: %w", err)
		}
		out := domain.GoalOutcome{Name: g.Name, Input: g.GoalInput}
		res, err := ce.AnalyzeGoal(g.GoalInput)
		if err != nil {
			ce.logger().Warnf("goal %q rejected: %v", g.Name, err)
			out.Error = err.Error()
		} else {
			out.Result = res
		}
		results.Goals = append(results.Goals, out)
	}

	if n := results.FailureCount(); n > 0 {
		ce.logger().Warnf("batch %q finished with %d rejected entries", file.Name, n)
	}
	return results, nil
}
