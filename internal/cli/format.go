// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// CurrencySymbol prefixes every formatted currency amount.
var CurrencySymbol = "$"

// FormatCurrency formats an amount with thousands separators and two decimals.
// e.g., -29411.7647 -> "-$29,411.76"
// NaN and infinities render as "NaN", "+Inf" and "-Inf".
func FormatCurrency(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if sign == "-" && strings.Trim(whole+frac, "0") == "" {
		sign = ""
	}
	return sign + CurrencySymbol + groupDigits(whole) + "." + frac
}

// FormatSignedCurrency formats an amount with an explicit sign.
// e.g., 1500 -> "+$1,500.00"
func FormatSignedCurrency(v float64) string {
	s := FormatCurrency(v)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") || s == "NaN" {
		return s
	}
	return "+" + s
}

// FormatWholeCurrency formats an integer amount, as used by chart points.
func FormatWholeCurrency(n int) string {
	s := FormatNumber(int64(n))
	if digits, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + CurrencySymbol + digits
	}
	return CurrencySymbol + s
}

// FormatIndex formats a performance index to three decimals.
func FormatIndex(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatDays formats a day count to one decimal.
func FormatDays(v float64) string {
	return fmt.Sprintf("%.1fd", v)
}

// FormatSignedDays formats a day variance with an explicit sign.
func FormatSignedDays(v float64) string {
	return fmt.Sprintf("%+.1fd", v)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatStatus renders a status as an upper-case label.
func FormatStatus(s evm.IndexStatus) string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "-", " "))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if digits, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + groupDigits(digits)
	}
	return groupDigits(s)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
