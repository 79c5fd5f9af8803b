package services

import (
	"math"
	"strconv"
	"strings"
)

// RoundMoney rounds an amount to the nearest whole rupee, halves up.
// Every money field in a project record passes through this before it is
// stored, so the forward and inverse pricing paths agree.
func RoundMoney(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundSystemKW rounds a system capacity for pricing and display.
// At 1 kW and above the capacity rounds to the nearest whole kW; below 1 kW
// the value is kept as-is so small systems do not collapse to 0 or 1.
func RoundSystemKW(kw float64) float64 {
	if kw >= 1 {
		return math.Floor(kw + 0.5)
	}
	return kw
}

// ParsePanelWatts extracts the integer watt rating from free-text input such
// as "540", "540W" or "540 Wp". Everything except digits is stripped before
// parsing; empty or non-numeric input yields 0.
func ParsePanelWatts(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// ParseCapacity parses an inverter capacity entered as text, tolerating a
// trailing unit suffix ("5", "5.5kVA", "7.5 KVA"). The second return value
// reports whether a numeric value was found.
func ParseCapacity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
