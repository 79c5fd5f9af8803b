package services

import "testing"

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect float64
	}{
		{"round down", 100.4, 100},
		{"half rounds up", 100.5, 101},
		{"round up", 100.6, 101},
		{"whole amount", 250, 250},
		{"zero", 0, 0},
		{"large amount", 91827.365, 91827},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundMoney(tt.amount); got != tt.expect {
				t.Errorf("RoundMoney(%v) = %v, want %v", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestRoundSystemKW(t *testing.T) {
	tests := []struct {
		name   string
		kw     float64
		expect float64
	}{
		{"rounds down above 1", 3.27, 3},
		{"rounds up above 1", 3.5, 4},
		{"exactly 1", 1, 1},
		{"sub-1kW kept as-is", 0.54, 0.54},
		{"sub-1kW not rounded to zero", 0.2, 0.2},
		{"zero", 0, 0},
		{"just above 1 rounds to 1", 1.2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundSystemKW(tt.kw); got != tt.expect {
				t.Errorf("RoundSystemKW(%v) = %v, want %v", tt.kw, got, tt.expect)
			}
		})
	}
}

func TestParsePanelWatts(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{"plain number", "540", 540},
		{"unit suffix", "540W", 540},
		{"spaced suffix", "545 Wp", 545},
		{"empty", "", 0},
		{"non-numeric", "abc", 0},
		{"whitespace only", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePanelWatts(tt.input); got != tt.expect {
				t.Errorf("ParsePanelWatts(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expect   float64
		expectOK bool
	}{
		{"plain number", "5", 5, true},
		{"decimal", "7.5", 7.5, true},
		{"unit suffix", "5.5kVA", 5.5, true},
		{"spaced suffix", "10 kVA", 10, true},
		{"leading whitespace", "  3kVA", 3, true},
		{"empty", "", 0, false},
		{"non-numeric", "kVA", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCapacity(tt.input)
			if got != tt.expect || ok != tt.expectOK {
				t.Errorf("ParseCapacity(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, ok, tt.expect, tt.expectOK)
			}
		})
	}
}
