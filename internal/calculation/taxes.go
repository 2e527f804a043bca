package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/calckit/internal/domain"
)

// countryTaxes holds flat headline capital-gains rates. They are defaults for
// the trade calculator, not tax advice; brackets, holding-period rules and
// allowances are not modelled.
var countryTaxes = map[string]domain.CountryTax{
	"US": {Code: "US", Name: "United States", CapitalGainsRatePercent: 15, CurrencyCode: "USD"},
	"CA": {Code: "CA", Name: "Canada", CapitalGainsRatePercent: 25, CurrencyCode: "CAD"},
	"UK": {Code: "UK", Name: "United Kingdom", CapitalGainsRatePercent: 20, CurrencyCode: "GBP"},
	"AU": {Code: "AU", Name: "Australia", CapitalGainsRatePercent: 22.5, CurrencyCode: "AUD"},
	"DE": {Code: "DE", Name: "Germany", CapitalGainsRatePercent: 26.375, CurrencyCode: "EUR"},
	"FR": {Code: "FR", Name: "France", CapitalGainsRatePercent: 30, CurrencyCode: "EUR"},
	"IT": {Code: "IT", Name: "Italy", CapitalGainsRatePercent: 26, CurrencyCode: "EUR"},
	"ES": {Code: "ES", Name: "Spain", CapitalGainsRatePercent: 23, CurrencyCode: "EUR"},
	"JP": {Code: "JP", Name: "Japan", CapitalGainsRatePercent: 20.315, CurrencyCode: "JPY"},
	"KR": {Code: "KR", Name: "South Korea", CapitalGainsRatePercent: 22, CurrencyCode: "KRW"},
	"IN": {Code: "IN", Name: "India", CapitalGainsRatePercent: 10, CurrencyCode: "INR"},
	"CN": {Code: "CN", Name: "China", CapitalGainsRatePercent: 20, CurrencyCode: "CNY"},
	"BR": {Code: "BR", Name: "Brazil", CapitalGainsRatePercent: 15, CurrencyCode: "BRL"},
	"MX": {Code: "MX", Name: "Mexico", CapitalGainsRatePercent: 10, CurrencyCode: "MXN"},
	"SG": {Code: "SG", Name: "Singapore", CapitalGainsRatePercent: 0, CurrencyCode: "SGD"},
	"NZ": {Code: "NZ", Name: "New Zealand", CapitalGainsRatePercent: 0, CurrencyCode: "NZD"},
}

// LookupCountryTax returns the table entry for a two-letter code, ignoring case.
// "GB" is accepted as an alias for "UK".
func LookupCountryTax(code string) (domain.CountryTax, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "GB" {
		key = "UK"
	}
	ct, ok := countryTaxes[key]
	if !ok {
		return domain.CountryTax{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	return ct, nil
}

// CountryTaxes returns the whole table sorted by code.
func CountryTaxes() []domain.CountryTax {
	out := make([]domain.CountryTax, 0, len(countryTaxes))
	for _, ct := range countryTaxes {
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
