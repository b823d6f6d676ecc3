// Package money provides helpers for monetary amounts with two-decimal
// (cent) precision. The application operates in a single currency, so
// amounts are plain decimals; exactness in minor units is the invariant
// this package guards.
package money

import (
	"github.com/shopspring/decimal"
)

// RoundCents rounds an amount to two decimal places (half away from zero,
// matching decimal.Round). Every amount entering an aggregate passes
// through here so sub-cent drift never reaches storage.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Equal reports whether two amounts are equal to the cent.
func Equal(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}
