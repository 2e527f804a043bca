package output

import (
	"fmt"

	"github.com/rpgo/calckit/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest is credited before each period's contribution",
	"Monthly contributions are spread evenly across compounding periods",
	"A partial final year compounds whole periods only",
	"Brokerage fees apply to both the buy and the sell leg",
	"Tax applies only to a positive profit after fees",
	"Target prices are solved to within 0.01 of the desired net profit",
}

// GenerateAssumptions extends DefaultAssumptions with facts about this run.
func GenerateAssumptions(results *domain.BatchResults) []string {
	lf := reportLocale(results)
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out, fmt.Sprintf("Amounts in %s, formatted for %s", lf.CurrencyCode(), lf.Locale()))

	for _, p := range results.Projections {
		if p.Input.InflationRatePercent > 0 {
			out = append(out, "Real values are discounted at each projection's own inflation rate")
			break
		}
	}
	for _, p := range results.Projections {
		if p.Input.ContributionGrowthRatePercent > 0 {
			out = append(out, "Contribution step-ups apply once per full year")
			break
		}
	}
	return out
}
