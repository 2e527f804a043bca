package cli

import (
	"fmt"

	"github.com/rpgo/calckit/internal/config"
	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/internal/output"
	"github.com/spf13/cobra"
)

var (
	batchExample bool
	batchOutDir  string
)

var batchCmd = &cobra.Command{
	Use:   "batch [scenario.yaml]",
	Short: "Run every calculation in a scenario file",
	Long: `Run every projection, target price, trade and goal in a YAML scenario file.
Entries that fail validation are reported without stopping the others.
With --out the report is written to a timestamped file; --format all writes
the console, ledger CSV and JSON reports together.`,
	Example: `  calckit batch --example > plan.yaml
  calckit batch plan.yaml -f html --out reports/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchExample, "example", false, "Print an example scenario file and exit")
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "Write the report into this directory (default from preferences, else stdout)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	if batchExample {
		data, err := config.MarshalScenarioFile(parser.CreateExampleScenarioFile())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("scenario file required (or --example)")
	}

	file, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}
	if file.Locale == "" {
		file.Locale = prefs.Locale
	}
	if file.Currency == "" {
		file.Currency = prefs.Currency
	}

	results, err := engine.RunBatch(cmd.Context(), file)
	if err != nil {
		return err
	}
	if n := results.FailureCount(); n > 0 {
		logger.Sugar().Warnf("%d entries in %s were rejected", n, args[0])
	}
	return writeBatch(cmd, results)
}

func writeBatch(cmd *cobra.Command, results *domain.BatchResults) error {
	dir := batchOutDir
	if dir == "" {
		dir = prefs.OutputDir
	}
	if dir == "" {
		if output.NormalizeFormatName(formatName()) == "all" {
			return fmt.Errorf("--format all needs an output directory (--out)")
		}
		return printResults(cmd.OutOrStdout(), results)
	}

	paths, err := output.GenerateReport(results, formatName(), dir)
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}
	return err
}
