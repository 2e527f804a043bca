package cli

import (
	"fmt"

	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/pkg/dateutil"
	"github.com/spf13/cobra"
)

var (
	projName     string
	projInput    domain.ProjectionInput
	targetName   string
	targetInput  domain.TargetPriceQuery
	targetLinear bool
	tradeName    string
	tradeInput   domain.TradeInput
	goalName     string
	goalTarget   float64
	projUntil    string
	tradeBought  string
	tradeSold    string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project compound growth with monthly contributions",
	Example: `  calckit project --principal 10000 --monthly 500 --rate 7 --years 10
  calckit project --principal 5000 --rate 4 --years 2.5 --compounding 365 -f json`,
	RunE: runProject,
}

var targetPriceCmd = &cobra.Command{
	Use:     "target-price",
	Short:   "Find the sell price that yields a desired net profit",
	Example: `  calckit target-price --buy 50 --shares 100 --profit 1000 --fee 0.5 --tax 15`,
	RunE:    runTargetPrice,
}

var tradeCmd = &cobra.Command{
	Use:     "trade",
	Short:   "Analyze the profit or loss of a round-trip trade",
	Example: `  calckit trade --buy 50 --sell 62 --shares 100 --fee 0.5 --days 200 --country US`,
	RunE:    runTrade,
}

var goalCmd = &cobra.Command{
	Use:     "goal",
	Short:   "Time to reach a savings target and the contribution it needs",
	Example: `  calckit goal --principal 5000 --monthly 400 --rate 4 --years 5 --target 40000`,
	RunE:    runGoal,
}

func init() {
	for _, c := range []*cobra.Command{projectCmd, goalCmd} {
		c.Flags().Float64Var(&projInput.Principal, "principal", 0, "Starting balance")
		c.Flags().Float64Var(&projInput.PeriodicContribution, "monthly", 0, "Monthly contribution")
		c.Flags().Float64Var(&projInput.AnnualRatePercent, "rate", 0, "Annual interest rate in percent")
		c.Flags().IntVar(&projInput.CompoundingPeriodsPerYear, "compounding", 0, "Compounding periods per year (default from preferences)")
		c.Flags().Float64Var(&projInput.Years, "years", 0, "Horizon in years, may be fractional")
		c.Flags().Float64Var(&projInput.InflationRatePercent, "inflation", 0, "Annual inflation in percent (default from preferences)")
		c.Flags().Float64Var(&projInput.ContributionGrowthRatePercent, "contribution-growth", 0, "Yearly contribution increase in percent")
		c.Flags().StringVar(&projUntil, "until", "", "End date (YYYY-MM-DD) instead of --years")
		c.MarkFlagsMutuallyExclusive("years", "until")
	}
	projectCmd.Flags().StringVar(&projName, "name", "Projection", "Label for the report")
	goalCmd.Flags().StringVar(&goalName, "name", "Goal", "Label for the report")
	goalCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target balance")

	targetPriceCmd.Flags().StringVar(&targetName, "name", "Target", "Label for the report")
	targetPriceCmd.Flags().Float64Var(&targetInput.BuyPrice, "buy", 0, "Buy price per share")
	targetPriceCmd.Flags().Float64Var(&targetInput.Shares, "shares", 0, "Number of shares")
	targetPriceCmd.Flags().Float64Var(&targetInput.DesiredNetProfit, "profit", 0, "Desired net profit")
	targetPriceCmd.Flags().Float64Var(&targetInput.BrokerageFeeRatePercent, "fee", 0, "Brokerage fee in percent of each leg")
	targetPriceCmd.Flags().Float64Var(&targetInput.TaxRatePercent, "tax", 0, "Tax rate on gains in percent")
	targetPriceCmd.Flags().BoolVar(&targetLinear, "linear", false, "Use the step-correction solver instead of bisection")

	tradeCmd.Flags().StringVar(&tradeName, "name", "Trade", "Label for the report")
	tradeCmd.Flags().Float64Var(&tradeInput.BuyPrice, "buy", 0, "Buy price per share")
	tradeCmd.Flags().Float64Var(&tradeInput.SellPrice, "sell", 0, "Sell price per share")
	tradeCmd.Flags().Float64Var(&tradeInput.Shares, "shares", 0, "Number of shares")
	tradeCmd.Flags().Float64Var(&tradeInput.BrokerageFeeRatePercent, "fee", 0, "Brokerage fee in percent of each leg")
	tradeCmd.Flags().Float64Var(&tradeInput.TaxRatePercent, "tax", 0, "Tax rate on gains in percent")
	tradeCmd.Flags().IntVar(&tradeInput.HoldingDays, "days", 0, "Holding period in days, for the annualized return")
	tradeCmd.Flags().Float64Var(&tradeInput.Dividends, "dividends", 0, "Dividends received")
	tradeCmd.Flags().StringVar(&tradeBought, "bought", "", "Buy date (YYYY-MM-DD); with --sold replaces --days")
	tradeCmd.Flags().StringVar(&tradeSold, "sold", "", "Sell date (YYYY-MM-DD), defaults to today")
	tradeCmd.Flags().StringVar(&tradeInput.Country, "country", "", "Country code whose capital gains rate replaces --tax")

	rootCmd.AddCommand(projectCmd, targetPriceCmd, tradeCmd, goalCmd)
}

// projectionFromFlags fills unset compounding and inflation from preferences.
func projectionFromFlags(cmd *cobra.Command) (domain.ProjectionInput, error) {
	in := projInput
	if projUntil != "" {
		until, err := dateutil.ParseDate(projUntil)
		if err != nil {
			return in, err
		}
		in.Years = dateutil.YearsUntilDate(nowFunc(), until)
	}
	if !cmd.Flags().Changed("compounding") {
		in.CompoundingPeriodsPerYear = prefs.DefaultCompounding
	}
	if !cmd.Flags().Changed("inflation") {
		in.InflationRatePercent = prefs.DefaultInflationPercent
	}
	return in, nil
}

func runProject(cmd *cobra.Command, _ []string) error {
	in, err := projectionFromFlags(cmd)
	if err != nil {
		return err
	}
	file := newScenario(projName)
	file.Projections = []domain.NamedProjection{{Name: projName, ProjectionInput: in}}
	return runAndPrint(cmd, file)
}

func runTargetPrice(cmd *cobra.Command, _ []string) error {
	if targetLinear {
		res, err := engine.SolveSellPriceLinear(targetInput)
		if err != nil {
			return err
		}
		results := newResults(targetName)
		results.TargetPrices = []domain.TargetPriceOutcome{{Name: targetName, Query: targetInput, Result: res}}
		return printResults(cmd.OutOrStdout(), results)
	}
	file := newScenario(targetName)
	file.TargetPrices = []domain.NamedTargetPrice{{Name: targetName, TargetPriceQuery: targetInput}}
	return runAndPrint(cmd, file)
}

func runTrade(cmd *cobra.Command, _ []string) error {
	in := tradeInput
	if tradeBought != "" {
		days, err := holdingDays(tradeBought, tradeSold)
		if err != nil {
			return err
		}
		in.HoldingDays = days
	}
	file := newScenario(tradeName)
	file.Trades = []domain.NamedTrade{{Name: tradeName, TradeInput: in}}
	return runAndPrint(cmd, file)
}

func holdingDays(bought, sold string) (int, error) {
	buy, err := dateutil.ParseDate(bought)
	if err != nil {
		return 0, fmt.Errorf("--bought: %w", err)
	}
	sell := nowFunc()
	if sold != "" {
		if sell, err = dateutil.ParseDate(sold); err != nil {
			return 0, fmt.Errorf("--sold: %w", err)
		}
	}
	return dateutil.HoldingDays(buy, sell)
}

func runGoal(cmd *cobra.Command, _ []string) error {
	in, err := projectionFromFlags(cmd)
	if err != nil {
		return err
	}
	file := newScenario(goalName)
	file.Goals = []domain.NamedGoal{{
		Name:      goalName,
		GoalInput: domain.GoalInput{ProjectionInput: in, TargetAmount: goalTarget},
	}}
	return runAndPrint(cmd, file)
}
