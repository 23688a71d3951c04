package services

import (
	"math"
	"testing"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "$0.00"},
		{"small integer", 5, "$5.00"},
		{"with decimals", 42.5, "$42.50"},
		{"hundreds", 999.99, "$999.99"},
		{"thousands", 1234.56, "$1,234.56"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"negative", -100, "-$100.00"},
		{"grand total", 1285.2, "$1,285.20"},
		{"NaN", math.NaN(), "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUSD(tt.input); got != tt.expect {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0, "0"},
		{40, "40"},
		{2.5, "2.50"},
		{0.125, "0.13"},
		{-3, "-3"},
	}

	for _, tt := range tests {
		if got := FormatQty(tt.input); got != tt.expect {
			t.Errorf("FormatQty(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestFixed2AndFormatNumber(t *testing.T) {
	if got := fixed2(131.25); got != "131.25" {
		t.Errorf("fixed2(131.25) = %q", got)
	}
	if got := fixed2(8.005); got != "8.01" {
		t.Errorf("fixed2(8.005) = %q", got)
	}
	if got := FormatNumber(0.0015); got != "0.0015" {
		t.Errorf("FormatNumber(0.0015) = %q", got)
	}
	if got := FormatNumber(55); got != "55" {
		t.Errorf("FormatNumber(55) = %q", got)
	}
}
