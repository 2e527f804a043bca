// Package cli implements the calckit commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rpgo/calckit/internal/calculation"
	"github.com/rpgo/calckit/internal/config"
	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagVerbose  bool
	flagConfig   string
	flagFormat   string
	flagLocale   string
	flagCurrency string

	nowFunc = time.Now

	prefs  = config.DefaultPreferences()
	logger = zap.NewNop()
	engine = calculation.NewCalculationEngine()
)

var rootCmd = &cobra.Command{
	Use:   "calckit",
	Short: "Investment, trading and everyday calculators",
	Long: `calckit projects compound growth, solves for target sell prices,
analyzes trades and savings goals, and bundles a few everyday tools:
text/hex conversion, QR scanning and body composition estimates.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		p, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLocale != "" {
			p.Locale = flagLocale
		}
		if flagCurrency != "" {
			p.Currency = flagCurrency
		}
		if err := p.Validate(); err != nil {
			return err
		}
		prefs = p

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if flagVerbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		engine.SetLogger(calculation.NewZapLogger(logger))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Preferences file (default $XDG_CONFIG_HOME/calckit/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format (see `calckit formats`)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Locale for amounts, e.g. de-DE")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "ISO 4217 currency code, e.g. EUR")
}

// formatName is the --format flag, falling back to the preferences.
func formatName() string {
	if flagFormat != "" {
		return flagFormat
	}
	return prefs.DefaultFormat
}

// formatterFor resolves name, giving the console report a renderer bound to w
// so colors follow the terminal.
func formatterFor(name string, w io.Writer) (output.Formatter, error) {
	if output.NormalizeFormatName(name) == "console" {
		return output.ConsoleVerboseFormatter{Renderer: lipgloss.NewRenderer(w)}, nil
	}
	return output.Lookup(name)
}

// newScenario starts a one-off scenario in the preferred locale.
func newScenario(name string) *domain.ScenarioFile {
	return &domain.ScenarioFile{Name: name, Locale: prefs.Locale, Currency: prefs.Currency}
}

// newResults is an empty report for results computed outside RunBatch.
func newResults(name string) *domain.BatchResults {
	return &domain.BatchResults{ID: uuid.NewString(), Name: name, Locale: prefs.Locale, Currency: prefs.Currency}
}

// runAndPrint evaluates file and writes it in the selected format. A single
// rejected entry is returned as the command's error.
func runAndPrint(cmd *cobra.Command, file *domain.ScenarioFile) error {
	results, err := engine.RunBatch(cmd.Context(), file)
	if err != nil {
		return err
	}
	if err := printResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if msg := firstError(results); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func printResults(w io.Writer, results *domain.BatchResults) error {
	f, err := formatterFor(formatName(), w)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

func firstError(r *domain.BatchResults) string {
	for _, p := range r.Projections {
		if p.Error != "" {
			return p.Name + ": " + p.Error
		}
	}
	for _, q := range r.TargetPrices {
		if q.Error != "" {
			return q.Name + ": " + q.Error
		}
	}
	for _, t := range r.Trades {
		if t.Error != "" {
			return t.Name + ": " + t.Error
		}
	}
	for _, g := range r.Goals {
		if g.Error != "" {
			return g.Name + ": " + g.Error
		}
	}
	return ""
}

func renderTable(cmd *cobra.Command, title string, headers []string, rows [][]string) string {
	return output.RenderTable(lipgloss.NewRenderer(cmd.OutOrStdout()), title, headers, rows)
}
