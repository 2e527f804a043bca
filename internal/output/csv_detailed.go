package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/calckit/internal/domain"
)

// CSVDetailedExporter writes the yearly ledger of every successful projection.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.BatchResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Projection", "Year", "StartBalance", "Contributions", "InterestEarned", "EndBalance", "CumulativeContributions", "RealValue", "Partial"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	projections := append([]domain.ProjectionOutcome(nil), results.Projections...)
	sort.SliceStable(projections, func(i, j int) bool { return projections[i].Name < projections[j].Name })
	for _, p := range projections {
		if p.Result == nil {
			continue
		}
		for _, yr := range p.Result.YearlyBreakdown {
			row := []string{
				p.Name,
				intToString(yr.Year),
				FormatMoney(yr.StartBalance),
				FormatMoney(yr.Contributions),
				FormatMoney(yr.InterestEarned),
				FormatMoney(yr.EndBalance),
				FormatMoney(yr.CumulativeContributions),
				FormatMoney(yr.RealValue),
				boolToString(yr.Partial),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
