package decimal

import (
	"github.com/shopspring/decimal"
)

// Money is a currency amount held as a decimal so that display rounding and
// column totals do not pick up binary floating-point noise.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount. The zero Money is a valid starting total.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Float64 returns the nearest float64, for handing to formatters.
func (m Money) Float64() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

// String returns the amount fixed to two places, without a currency symbol.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
