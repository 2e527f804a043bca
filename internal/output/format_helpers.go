package output

import (
	"strconv"

	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/pkg/decimal"
	"github.com/rpgo/calckit/pkg/locale"
	stddec "github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals and no symbol, for
// machine-readable outputs.
func FormatMoney(amount float64) string { return decimal.NewMoney(amount).String() }

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string {
	return stddec.NewFromFloat(pct).StringFixed(2) + "%"
}

// reportLocale returns the formatter for a result set, falling back to
// en-US/USD when the stored locale is unusable.
func reportLocale(results *domain.BatchResults) *locale.Formatter {
	lf, err := locale.New(results.Locale, results.Currency)
	if err != nil {
		return locale.MustNew(locale.DefaultLocale, locale.DefaultCurrency)
	}
	return lf
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
