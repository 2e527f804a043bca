package cli

import (
	"fmt"
	"strings"

	"github.com/rpgo/calckit/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and their aliases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		aliases := map[string][]string{}
		for _, a := range output.AvailableFormatAliases() {
			canon := output.NormalizeFormatName(a)
			aliases[canon] = append(aliases[canon], a)
		}
		var rows [][]string
		for _, name := range output.AvailableFormatterNames() {
			rows = append(rows, []string{name, "." + output.Extension(name), strings.Join(aliases[name], ", ")})
		}
		rows = append(rows, []string{"all", "", "console + detailed-csv + json (batch --out only)"})
		fmt.Fprint(cmd.OutOrStdout(), renderTable(cmd, "Report formats", []string{"Format", "File", "Aliases"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
