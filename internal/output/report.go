package output

import (
	"github.com/rpgo/calckit/internal/domain"
)

// allFormats is what GenerateReport writes for the "all" format.
var allFormats = []string{"console", "detailed-csv", "json"}

// GenerateReport writes results to dir in the named format and returns the
// files written. "all" writes a console report, the ledger CSV and JSON.
func GenerateReport(results *domain.BatchResults, format, dir string) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = allFormats
	}

	var written []string
	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(f, results, dir)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
