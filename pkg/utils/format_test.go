package utils

import "testing"

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.00},
		{1.006, 1.01},
		{-1.004, -1.00},
		{99.999, 100.00},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{999.5, "$999.50"},
		{1_000, "$1,000.00"},
		{1_234_567.89, "$1,234,567.89"},
		{-50_000, "-$50,000.00"},
		{-0.25, "-$0.25"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentAndPnL(t *testing.T) {
	if got := FormatPercent(12.345); got != "+12.35%" {
		t.Errorf("FormatPercent(12.345) = %q", got)
	}
	if got := FormatPercent(-3.2); got != "-3.20%" {
		t.Errorf("FormatPercent(-3.2) = %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
	if got := FormatPnL(1_500); got != "+$1,500.00" {
		t.Errorf("FormatPnL(1500) = %q", got)
	}
	if got := FormatPnL(-1_500); got != "-$1,500.00" {
		t.Errorf("FormatPnL(-1500) = %q", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(1_234_567); got != "1,234,567" {
		t.Errorf("FormatQuantity(1234567) = %q", got)
	}
	if got := FormatQuantity(42); got != "42" {
		t.Errorf("FormatQuantity(42) = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2_500_000_000, "$2.50B"},
		{3_200_000, "$3.20M"},
		{45_600, "$45.6K"},
		{999, "$999.00"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
