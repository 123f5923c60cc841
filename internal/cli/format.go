// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats a currency amount for display, e.g.
// 6461427.56, "USD" -> "$6,461,427.56". Unknown currency codes fall
// back to USD formatting.
func FormatMoney(amount float64, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}

	// Round in decimal space before converting to minor units so that
	// float artifacts never shift a cent.
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatCompactMoney formats a currency amount with K/M suffixes for
// tight layouts, e.g. 6461427.56 -> "$6.5M".
func FormatCompactMoney(amount float64, code string) string {
	symbol := "$"
	if cur := money.GetCurrency(code); cur != nil {
		symbol = cur.Grapheme
	}

	abs := amount
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%s%.1fB", symbol, amount/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", symbol, amount/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%s%.0fK", symbol, amount/1_000)
	default:
		return FormatMoney(amount, code)
	}
}

// FormatRate formats a fractional rate as a percentage, e.g.
// 0.06 -> "6.00%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatYears formats a year count, e.g. 30 -> "30y".
func FormatYears(years int) string {
	return fmt.Sprintf("%dy", years)
}
