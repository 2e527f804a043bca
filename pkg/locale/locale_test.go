package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	got, err := FormatCurrency(1234.5, "en-US", "USD")
	require.NoError(t, err)
	assert.Equal(t, "$ 1,234.50", got)

	got, err = FormatCurrency(1234.5, "de-DE", "EUR")
	require.NoError(t, err)
	assert.Contains(t, got, "€")
	assert.Contains(t, got, "1.234,50")

	got, err = FormatCurrency(1234.5, "", "")
	require.NoError(t, err)
	assert.Equal(t, "$ 1,234.50", got)
}

func TestFormatCurrencyRejectsUnknownCodes(t *testing.T) {
	_, err := FormatCurrency(1, "en-US", "XYZW")
	assert.Error(t, err)

	_, err = New("not a locale!", "USD")
	assert.Error(t, err)
}

func TestFormatterNumbers(t *testing.T) {
	f := MustNew("en-US", "USD")
	assert.Equal(t, "1,234,567.89", f.Number(1234567.891, 2))
	assert.Equal(t, "12", f.Number(12.4, 0))
	assert.Equal(t, "8.50%", f.Percent(8.5))
	assert.Equal(t, "USD", f.CurrencyCode())
	assert.Equal(t, "en-US", f.Locale())
}
