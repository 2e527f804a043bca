package output

import "github.com/rpgo/calckit/internal/domain"

func buildTestResults() *domain.BatchResults {
	return &domain.BatchResults{
		ID:       "11111111-2222-3333-4444-555555555555",
		Name:     "Test plan",
		Locale:   "en-US",
		Currency: "USD",
		Projections: []domain.ProjectionOutcome{
			{
				Name:  "B fund",
				Input: domain.ProjectionInput{Principal: 1000, PeriodicContribution: 1000.0 / 12, AnnualRatePercent: 5, CompoundingPeriodsPerYear: 1, Years: 1, InflationRatePercent: 5},
				Result: &domain.ProjectionResult{
					FutureValue: 2100, TotalContributions: 2000, TotalGrowth: 100, AverageAnnualReturn: 0.05, RealValue: 2000,
					YearlyBreakdown: []domain.YearRecord{
						{Year: 1, StartBalance: 1000, Contributions: 1000, InterestEarned: 100, EndBalance: 2100, CumulativeContributions: 2000, RealValue: 2000},
					},
				},
			},
			{
				Name:  "A fund",
				Input: domain.ProjectionInput{Principal: 1000, AnnualRatePercent: 10, CompoundingPeriodsPerYear: 1, Years: 1.5},
				Result: &domain.ProjectionResult{
					FutureValue: 1234.5, TotalContributions: 1000, TotalGrowth: 234.5, AverageAnnualReturn: 0.15, RealValue: 1234.5,
					YearlyBreakdown: []domain.YearRecord{
						{Year: 1, StartBalance: 1000, InterestEarned: 100, EndBalance: 1100, CumulativeContributions: 1000, RealValue: 1100},
						{Year: 2, StartBalance: 1100, InterestEarned: 134.5, EndBalance: 1234.5, CumulativeContributions: 1000, RealValue: 1234.5, Partial: true},
					},
				},
			},
			{
				Name:  "Broken",
				Input: domain.ProjectionInput{Years: -1},
				Error: "invalid input: years must be positive",
			},
		},
		TargetPrices: []domain.TargetPriceOutcome{
			{
				Name:   "Exit",
				Query:  domain.TargetPriceQuery{BuyPrice: 50, Shares: 100, DesiredNetProfit: 1000, BrokerageFeeRatePercent: 0.5, TaxRatePercent: 15},
				Result: &domain.TargetPriceResult{SellPrice: 62.3264, NetProfit: 1000.0015, Converged: true, Iterations: 16},
			},
		},
		Trades: []domain.TradeOutcome{
			{
				Name:  "Round trip",
				Input: domain.TradeInput{BuyPrice: 100, SellPrice: 120, Shares: 10, BrokerageFeeRatePercent: 1, TaxRatePercent: 15, HoldingDays: 365},
				Result: &domain.TradeResult{
					TotalCost: 1000, TotalRevenue: 1200, GrossProfit: 200, BrokerageFees: 22, Taxes: 26.7, NetProfit: 151.3,
					ProfitPercentage: 15.13, AnnualizedReturnPercent: 15.13, BreakEvenPrice: 102.0202, TaxRatePercent: 15,
				},
			},
			{
				Name:   "Loser",
				Input:  domain.TradeInput{BuyPrice: 10, SellPrice: 8, Shares: 5},
				Result: &domain.TradeResult{TotalCost: 50, TotalRevenue: 40, GrossProfit: -10, NetProfit: -10, ProfitPercentage: -20, BreakEvenPrice: 10},
			},
		},
		Goals: []domain.GoalOutcome{
			{
				Name:   "Deposit",
				Input:  domain.GoalInput{TargetAmount: 40000},
				Result: &domain.GoalResult{Reached: true, YearsToGoal: 7, BalanceAtGoal: 45314.23, RequiredMonthlyContribution: 511.24, ProjectedValue: 32624.57, Shortfall: 7375.43},
			},
		},
	}
}
