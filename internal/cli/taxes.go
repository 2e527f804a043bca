package cli

import (
	"fmt"

	"github.com/rpgo/calckit/internal/calculation"
	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/pkg/locale"
	"github.com/spf13/cobra"
)

var taxesCmd = &cobra.Command{
	Use:   "taxes [country]",
	Short: "List default capital gains rates by country",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTaxes,
}

func init() {
	rootCmd.AddCommand(taxesCmd)
}

func runTaxes(cmd *cobra.Command, args []string) error {
	rows := calculation.CountryTaxes()
	if len(args) == 1 {
		ct, err := calculation.LookupCountryTax(args[0])
		if err != nil {
			return err
		}
		rows = []domain.CountryTax{ct}
	}

	lf, err := locale.New(prefs.Locale, prefs.Currency)
	if err != nil {
		return err
	}
	table := make([][]string, 0, len(rows))
	for _, ct := range rows {
		table = append(table, []string{ct.Code, ct.Name, lf.Percent(ct.CapitalGainsRatePercent), ct.CurrencyCode})
	}
	fmt.Fprint(cmd.OutOrStdout(), renderTable(cmd, "Capital gains rates", []string{"Code", "Country", "Rate", "Currency"}, table))
	return nil
}
