// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// RoundCents rounds a dollar amount to the nearest cent.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatUSD formats a dollar amount with thousands separators.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")

	result := "$" + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(s[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a percentage with an explicit sign on gains.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatPnL formats a profit-and-loss figure with an explicit sign on gains.
func FormatPnL(pnl float64) string {
	formatted := FormatUSD(pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatQuantity formats a share count with commas.
func FormatQuantity(qty int) string {
	return groupThousands(fmt.Sprintf("%d", qty))
}

// FormatCompact formats a dollar amount in compact form (K/M/B).
func FormatCompact(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.1fK", amount/1e3)
	default:
		return FormatUSD(amount)
	}
}
