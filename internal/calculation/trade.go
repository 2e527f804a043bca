package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/calckit/internal/domain"
)

// AnalyzeTrade computes the profit/loss breakdown of a round-trip trade.
// Dividends are added to net profit untaxed. When Country is set, its
// capital-gains rate replaces TaxRatePercent.
func (ce *CalculationEngine) AnalyzeTrade(in domain.TradeInput) (*domain.TradeResult, error) {
	taxPct := in.TaxRatePercent
	if in.Country != "" {
		ct, err := LookupCountryTax(in.Country)
		if err != nil {
			return nil, fmt.Errorf("trade tax rate: %w", err)
		}
		taxPct = ct.CapitalGainsRatePercent
	}

	switch {
	case !finite(in.BuyPrice) || in.BuyPrice <= 0:
		return nil, invalid("buy_price", "must be positive")
	case !finite(in.SellPrice) || in.SellPrice <= 0:
		return nil, invalid("sell_price", "must be positive")
	case !finite(in.Shares) || in.Shares <= 0:
		return nil, invalid("shares", "must be positive")
	case !validRate(in.BrokerageFeeRatePercent):
		return nil, invalid("brokerage_fee_rate_percent", "must be in [0, 100)")
	case !validRate(taxPct):
		return nil, invalid("tax_rate_percent", "must be in [0, 100)")
	case in.HoldingDays < 0:
		return nil, invalid("holding_days", "must not be negative")
	case !finite(in.Dividends) || in.Dividends < 0:
		return nil, invalid("dividends", "must not be negative")
	}

	f := in.BrokerageFeeRatePercent / 100
	l := tradeLegs(in.BuyPrice, in.SellPrice, in.Shares, f, taxPct/100)
	net := l.net + in.Dividends

	res := &domain.TradeResult{
		TotalCost:        l.cost,
		TotalRevenue:     l.revenue,
		GrossProfit:      l.gross,
		BrokerageFees:    l.fees,
		Taxes:            l.taxes,
		Dividends:        in.Dividends,
		NetProfit:        net,
		ProfitPercentage: net / l.cost * 100,
		BreakEvenPrice:   in.BuyPrice * (1 + f) / (1 - f),
		TaxRatePercent:   taxPct,
	}
	if in.HoldingDays > 0 {
		res.AnnualizedReturnPercent = AnnualizedReturn(net/l.cost, in.HoldingDays) * 100
	}

	ce.logger().Debugf("trade: net %.2f (%.2f%%) over %d days", res.NetProfit, res.ProfitPercentage, in.HoldingDays)
	return res, nil
}

// AnnualizedReturn converts a holding-period return (a fraction) over days
// into a compound annual rate using a 365-day year. A loss of the whole stake
// or more annualizes to -1. Rates too large for a float64 are capped at
// math.MaxFloat64.
func AnnualizedReturn(periodReturn float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	if periodReturn <= -1 {
		return -1
	}
	r := math.Pow(1+periodReturn, 365/float64(days)) - 1
	if math.IsInf(r, 1) {
		return math.MaxFloat64
	}
	return r
}
