package services

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as US dollars with thousands separators and
// exactly 2 decimal places (e.g., $1,234.50, -$12.00).
func FormatUSD(amount float64) string {
	amount = finite(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatQty returns whole quantities without decimals and everything else
// with 2 decimal places.
func FormatQty(qty float64) string {
	qty = finite(qty)
	if qty == math.Trunc(qty) {
		return decimal.NewFromFloat(qty).StringFixed(0)
	}
	return decimal.NewFromFloat(qty).StringFixed(2)
}

// fixed2 renders an amount with exactly 2 decimals, rounding half away from zero.
func fixed2(amount float64) string {
	return decimal.NewFromFloat(finite(amount)).StringFixed(2)
}

// FormatNumber renders a number in its shortest exact form (55, 0.0015).
func FormatNumber(n float64) string {
	return decimal.NewFromFloat(finite(n)).String()
}
