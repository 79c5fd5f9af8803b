package services

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount into Indian Rupee notation. After the
// rightmost 3 digits, digits are grouped in pairs (₹1,23,45,678.90), always
// with 2 decimal places.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	formatted := applyIndianGrouping(intPart)

	result := "₹" + formatted + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatKW formats a system capacity for display: whole capacities without
// decimals ("3 kW"), fractional ones with 2 ("0.54 kW"). Mirrors the rounding
// policy, which keeps sub-1kW capacities unrounded.
func FormatKW(kw float64) string {
	rounded := RoundSystemKW(kw)
	if rounded == float64(int64(rounded)) {
		return fmt.Sprintf("%.0f kW", rounded)
	}
	return fmt.Sprintf("%.2f kW", rounded)
}

// FormatHours formats a backup-hours estimate with 2 decimal places.
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f hrs", h)
}

// applyIndianGrouping inserts commas into an integer string using the Indian
// numbering system: the rightmost 3 digits form the first group, then every
// 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
