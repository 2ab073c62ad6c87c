package parser

import "testing"

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0.5", "50%"},
		{"0.075", "7.5%"},
		{"0.125", "12.5%"},
		{"0.01", "1%"},
		{" 0.25 ", "25%"},
		{"0", "0"},
		{"1", "1"},
		{"1.5", "1.5"},
		{"-0.5", "-0.5"},
		{"1200", "1200"},
		{"abc", "abc"},
		{"NaN", "NaN"},
		{"0x1p-2", "0x1p-2"},
		{"", ""},
	}

	for _, tt := range tests {
		result := NormalizeValue(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeValue(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{50, "50%"},
		{7.5, "7.5%"},
		{12.25, "12.25%"},
		{99.999, "100%"},
		{10, "10%"},
	}

	for _, tt := range tests {
		result := FormatPercent(tt.input)
		if result != tt.expected {
			t.Errorf("FormatPercent(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
