package cli

import "testing"

func TestFormatIndianCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{740, "₹740.00"},
		{1234.5, "₹1,234.50"},
		{25000, "₹25,000.00"},
		{1234567.89, "₹12,34,567.89"},
		{10000000, "₹1,00,00,000.00"},
		{-740, "-₹740.00"},
	}

	for _, tt := range tests {
		if got := FormatIndianCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatIndianCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "0.0%"},
		{0.451, "45.1%"},
		{1, "100.0%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.fraction); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestFormatBreakevens(t *testing.T) {
	if got := formatBreakevens(nil); got != "None" {
		t.Errorf("formatBreakevens(nil) = %q, want None", got)
	}
	if got := formatBreakevens([]float64{24260.4, 25739.6}); got != "24260, 25740" {
		t.Errorf("formatBreakevens = %q", got)
	}
}

func TestCurveExtremes(t *testing.T) {
	maxProfit, maxLoss := curveExtremes([]float64{-740, 120, 1260, -5})
	if maxProfit != 1260 || maxLoss != -740 {
		t.Errorf("curveExtremes = %v/%v, want 1260/-740", maxProfit, maxLoss)
	}

	maxProfit, maxLoss = curveExtremes(nil)
	if maxProfit != 0 || maxLoss != 0 {
		t.Errorf("empty curve extremes = %v/%v, want 0/0", maxProfit, maxLoss)
	}
}
