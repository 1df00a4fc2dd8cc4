package models

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int
		expected string
	}{
		{"zero", 0, "IDR 0"},
		{"under a thousand", 999, "IDR 999"},
		{"thousands", 1000, "IDR 1,000"},
		{"typical price", 1250000, "IDR 1,250,000"},
		{"millions", 12345678, "IDR 12,345,678"},
		{"negative", -1500, "IDR -1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.price); got != tt.expected {
				t.Errorf("FormatPrice(%d): got %q, want %q", tt.price, got, tt.expected)
			}
		})
	}
}
