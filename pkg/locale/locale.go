// Package locale formats currency amounts, grouped numbers and percentages
// for a BCP 47 locale.
package locale

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Formatter renders values for one locale and currency.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// New builds a Formatter. Empty arguments fall back to en-US and USD.
func New(localeTag, currencyCode string) (*Formatter, error) {
	if localeTag == "" {
		localeTag = DefaultLocale
	}
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}
	tag, err := language.Parse(localeTag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", localeTag, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	return &Formatter{tag: tag, unit: unit, printer: message.NewPrinter(tag)}, nil
}

// MustNew is New for known-good constants; it panics on error.
func MustNew(localeTag, currencyCode string) *Formatter {
	f, err := New(localeTag, currencyCode)
	if err != nil {
		panic(err)
	}
	return f
}

// Currency formats amount with the currency symbol and the currency's
// standard number of minor digits, e.g. "$ 1,234.50".
func (f *Formatter) Currency(amount float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

// Number formats v with grouping and exactly decimals fraction digits.
func (f *Formatter) Number(v float64, decimals int) string {
	return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// Percent formats a whole-number percentage (8.5 means 8.5%) with two decimals.
func (f *Formatter) Percent(pct float64) string {
	return f.Number(pct, 2) + "%"
}

// CurrencyCode returns the ISO 4217 code in use.
func (f *Formatter) CurrencyCode() string { return f.unit.String() }

// Locale returns the BCP 47 tag in use.
func (f *Formatter) Locale() string { return f.tag.String() }

// FormatCurrency is a one-shot helper around New and Currency.
func FormatCurrency(amount float64, localeTag, currencyCode string) (string, error) {
	f, err := New(localeTag, currencyCode)
	if err != nil {
		return "", err
	}
	return f.Currency(amount), nil
}
