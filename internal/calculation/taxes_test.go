package calculation

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCountryTax(t *testing.T) {
	tests := []struct {
		code     string
		wantCode string
		wantRate float64
	}{
		{"US", "US", 15},
		{"us", "US", 15},
		{" de ", "DE", 26.375},
		{"GB", "UK", 20},
		{"uk", "UK", 20},
		{"SG", "SG", 0},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ct, err := LookupCountryTax(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, ct.Code)
			assert.Equal(t, tt.wantRate, ct.CapitalGainsRatePercent)
			assert.NotEmpty(t, ct.CurrencyCode)
		})
	}
}

func TestLookupCountryTaxUnknown(t *testing.T) {
	for _, code := range []string{"", "XX", "USA"} {
		_, err := LookupCountryTax(code)
		assert.True(t, errors.Is(err, ErrUnknownCountry), "code %q", code)
	}
}

func TestCountryTaxesSortedAndValid(t *testing.T) {
	table := CountryTaxes()
	require.Len(t, table, len(countryTaxes))
	assert.True(t, sort.SliceIsSorted(table, func(i, j int) bool { return table[i].Code < table[j].Code }))
	for _, ct := range table {
		assert.True(t, validRate(ct.CapitalGainsRatePercent), ct.Code)
		assert.Len(t, ct.CurrencyCode, 3, ct.Code)
	}
}
