package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with a leading peso sign and thousands
// separators the way the dashboard displays currency, e.g. 50000 -> "$50.000".
// Amounts are whole pesos; fractional parts are rounded away.
func FormatMoney(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	digits := amount.Abs().Round(0).String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatWithPrecision formats an amount rounded to the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
