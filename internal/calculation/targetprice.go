package calculation

import (
	"math"

	"github.com/rpgo/calckit/internal/domain"
)

const (
	// ProfitTolerance is how close (in currency units) a solved price's net
	// profit must be to the target.
	ProfitTolerance = 0.01

	maxSolverIterations = 100
	maxBracketDoublings = 64
)

// NetProfit returns the after-fee, after-tax profit of selling shares bought
// at buy for sell. feeRate and taxRate are fractions. Fees apply to both legs
// of the trade and tax applies only to a positive pre-tax gain.
func NetProfit(buy, sell, shares, feeRate, taxRate float64) float64 {
	return tradeLegs(buy, sell, shares, feeRate, taxRate).net
}

type legs struct {
	cost, revenue, gross, fees, taxes, net float64
}

func tradeLegs(buy, sell, shares, feeRate, taxRate float64) legs {
	l := legs{cost: buy * shares, revenue: sell * shares}
	l.gross = l.revenue - l.cost
	l.fees = (l.cost + l.revenue) * feeRate
	l.taxes = math.Max(0, l.gross-l.fees) * taxRate
	l.net = l.gross - l.fees - l.taxes
	return l
}

// ValidateTargetPriceQuery checks the solver preconditions.
func ValidateTargetPriceQuery(q domain.TargetPriceQuery) error {
	switch {
	case !finite(q.BuyPrice) || q.BuyPrice <= 0:
		return invalid("buy_price", "must be positive")
	case !finite(q.Shares) || q.Shares <= 0:
		return invalid("shares", "must be positive")
	case !finite(q.DesiredNetProfit) || q.DesiredNetProfit <= 0:
		return invalid("desired_net_profit", "must be positive")
	case !validRate(q.BrokerageFeeRatePercent):
		return invalid("brokerage_fee_rate_percent", "must be in [0, 100)")
	case !validRate(q.TaxRatePercent):
		return invalid("tax_rate_percent", "must be in [0, 100)")
	}
	return nil
}

// SolveSellPrice finds the sell price whose net profit equals the desired
// profit. Net profit is strictly increasing in the sell price, so the search
// brackets the root starting at the buy price and bisects it. A result with
// Converged false carries the best estimate after the iteration cap.
func (ce *CalculationEngine) SolveSellPrice(q domain.TargetPriceQuery) (*domain.TargetPriceResult, error) {
	if err := ValidateTargetPriceQuery(q); err != nil {
		return nil, err
	}
	f := q.BrokerageFeeRatePercent / 100
	t := q.TaxRatePercent / 100
	profitAt := func(price float64) float64 {
		return NetProfit(q.BuyPrice, price, q.Shares, f, t)
	}

	// At the buy price the trade loses the fees, so lo is always below target.
	lo := q.BuyPrice
	span := math.Max(q.DesiredNetProfit/q.Shares, 1)
	hi := lo + span
	bracketed := profitAt(hi) >= q.DesiredNetProfit
	for i := 0; i < maxBracketDoublings && !bracketed; i++ {
		span *= 2
		hi = lo + span
		bracketed = profitAt(hi) >= q.DesiredNetProfit
	}
	if !bracketed {
		ce.logger().Warnf("target price: no bracket found below %.4g", hi)
		return &domain.TargetPriceResult{SellPrice: hi, NetProfit: profitAt(hi)}, nil
	}

	var mid, net float64
	for i := 1; i <= maxSolverIterations; i++ {
		mid = lo + (hi-lo)/2
		net = profitAt(mid)
		diff := net - q.DesiredNetProfit
		if math.Abs(diff) < ProfitTolerance {
			ce.logger().Debugf("target price converged to %.4f after %d iterations", mid, i)
			return &domain.TargetPriceResult{SellPrice: mid, NetProfit: net, Converged: true, Iterations: i}, nil
		}
		if diff < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	ce.logger().Warnf("target price did not converge after %d iterations (last %.6f)", maxSolverIterations, mid)
	return &domain.TargetPriceResult{SellPrice: mid, NetProfit: net, Iterations: maxSolverIterations}, nil
}

// SolveSellPriceLinear is the step-correction search: start ten currency
// units above the buy price and move by 1.1 times the linear price gap each
// step. It is kept for comparison with SolveSellPrice and reports
// non-convergence the same way.
func (ce *CalculationEngine) SolveSellPriceLinear(q domain.TargetPriceQuery) (*domain.TargetPriceResult, error) {
	if err := ValidateTargetPriceQuery(q); err != nil {
		return nil, err
	}
	f := q.BrokerageFeeRatePercent / 100
	t := q.TaxRatePercent / 100

	price := q.BuyPrice + 10
	var net float64
	for i := 1; i <= maxSolverIterations; i++ {
		net = NetProfit(q.BuyPrice, price, q.Shares, f, t)
		if math.Abs(net-q.DesiredNetProfit) < ProfitTolerance {
			return &domain.TargetPriceResult{SellPrice: price, NetProfit: net, Converged: true, Iterations: i}, nil
		}
		price += (q.DesiredNetProfit - net) / q.Shares * 1.1
	}
	net = NetProfit(q.BuyPrice, price, q.Shares, f, t)
	return &domain.TargetPriceResult{SellPrice: price, NetProfit: net, Iterations: maxSolverIterations}, nil
}

func validRate(pct float64) bool {
	return finite(pct) && pct >= 0 && pct < 100
}
