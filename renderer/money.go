package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney formats a decimal price in the given currency, e.g. "$150.25".
// Unknown currency codes fall back to go-money's default formatting.
func formatMoney(v decimal.Decimal, code string) string {
	if code == "" {
		code = "USD"
	}
	// the Money constructor guarantees a non-nil currency even for unknown
	// codes.
	cur := *money.New(0, code).Currency()
	shifted := v.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}
