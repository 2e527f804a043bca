package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/calckit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetProfit(t *testing.T) {
	tests := []struct {
		name                     string
		buy, sell, shares, f, tx float64
		want                     float64
	}{
		{"gain with fees and tax", 100, 120, 10, 0.01, 0.15, (200 - 22) * 0.85},
		{"loss is untaxed", 100, 90, 10, 0.01, 0.2, -100 - 19},
		{"fees exceed gain", 100, 101, 10, 0.01, 0.3, 10 - 20.1},
		{"no fees no tax", 20, 25, 4, 0, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NetProfit(tt.buy, tt.sell, tt.shares, tt.f, tt.tx), 1e-9)
		})
	}
}

func TestSolveSellPriceReferenceTrade(t *testing.T) {
	q := domain.TargetPriceQuery{
		BuyPrice:                50,
		Shares:                  200,
		DesiredNetProfit:        2000,
		BrokerageFeeRatePercent: 0.1,
		TaxRatePercent:          15,
	}
	res, err := NewCalculationEngine().SolveSellPrice(q)
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, maxSolverIterations)

	net := NetProfit(q.BuyPrice, res.SellPrice, q.Shares, 0.001, 0.15)
	assert.InDelta(t, 2000, net, ProfitTolerance)
	assert.InDelta(t, net, res.NetProfit, 1e-9)
	assert.InDelta(t, 61.8766, res.SellPrice, 1e-4)
	assert.InDelta(t, closedFormSellPrice(q), res.SellPrice, 1e-4)
}

func TestSolveSellPriceInvertsProfitFormula(t *testing.T) {
	ce := NewCalculationEngine()
	for _, buy := range []float64{0.05, 1, 12.5, 480, 9000} {
		for _, shares := range []float64{1, 3.5, 100, 25000} {
			for _, fee := range []float64{0, 0.1, 2.5} {
				for _, tax := range []float64{0, 15, 45} {
					q := domain.TargetPriceQuery{BuyPrice: buy, Shares: shares, DesiredNetProfit: 750, BrokerageFeeRatePercent: fee, TaxRatePercent: tax}
					res, err := ce.SolveSellPrice(q)
					require.NoError(t, err)
					if !res.Converged {
						continue
					}
					net := NetProfit(buy, res.SellPrice, shares, fee/100, tax/100)
					assert.InDelta(t, 750, net, ProfitTolerance, "%+v", q)
					assert.Greater(t, res.SellPrice, buy)
				}
			}
		}
	}
}

func TestSolveSellPriceReportsNonConvergence(t *testing.T) {
	// With 1e18 shares one ulp of price moves profit by thousands, so the
	// tolerance can never be met.
	res, err := NewCalculationEngine().SolveSellPrice(domain.TargetPriceQuery{
		BuyPrice:         50,
		Shares:           1e18,
		DesiredNetProfit: 1234.5,
	})
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, maxSolverIterations, res.Iterations)
	assert.GreaterOrEqual(t, res.SellPrice, 50.0)
	assert.Less(t, res.SellPrice, 51.0)
}

func TestSolveSellPriceLinearAgreesWithBisection(t *testing.T) {
	ce := NewCalculationEngine()
	q := domain.TargetPriceQuery{BuyPrice: 50, Shares: 200, DesiredNetProfit: 2000, BrokerageFeeRatePercent: 0.1, TaxRatePercent: 15}

	linear, err := ce.SolveSellPriceLinear(q)
	require.NoError(t, err)
	bisect, err := ce.SolveSellPrice(q)
	require.NoError(t, err)

	require.True(t, linear.Converged)
	assert.InDelta(t, bisect.SellPrice, linear.SellPrice, 1e-3)
	assert.Less(t, linear.Iterations, bisect.Iterations)
}

func TestSolveSellPriceRejectsInvalidQuery(t *testing.T) {
	base := domain.TargetPriceQuery{BuyPrice: 50, Shares: 200, DesiredNetProfit: 2000, BrokerageFeeRatePercent: 0.1, TaxRatePercent: 15}
	tests := []struct {
		name string
		mod  func(*domain.TargetPriceQuery)
	}{
		{"zero buy price", func(q *domain.TargetPriceQuery) { q.BuyPrice = 0 }},
		{"zero shares", func(q *domain.TargetPriceQuery) { q.Shares = 0 }},
		{"zero desired profit", func(q *domain.TargetPriceQuery) { q.DesiredNetProfit = 0 }},
		{"negative desired profit", func(q *domain.TargetPriceQuery) { q.DesiredNetProfit = -5 }},
		{"fee rate of 100%", func(q *domain.TargetPriceQuery) { q.BrokerageFeeRatePercent = 100 }},
		{"tax rate NaN", func(q *domain.TargetPriceQuery) { q.TaxRatePercent = math.NaN() }},
	}

	ce := NewCalculationEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			tt.mod(&q)
			res, err := ce.SolveSellPrice(q)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			res, err = ce.SolveSellPriceLinear(q)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

// closedFormSellPrice solves the profit equation directly for the taxable
// case (desired > 0 implies a positive pre-tax gain).
func closedFormSellPrice(q domain.TargetPriceQuery) float64 {
	f := q.BrokerageFeeRatePercent / 100
	t := q.TaxRatePercent / 100
	return (q.DesiredNetProfit/(1-t) + q.BuyPrice*q.Shares*(1+f)) / (q.Shares * (1 - f))
}
