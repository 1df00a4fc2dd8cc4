package services

import "testing"

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"male lowercase", "male", "Men"},
		{"men lowercase", "men", "Men"},
		{"male mixed case", "MaLe", "Men"},
		{"men uppercase", "MEN", "Men"},
		{"female lowercase", "female", "Women"},
		{"women lowercase", "women", "Women"},
		{"female mixed case", "FEMALE", "Women"},
		{"already normalized men", "Men", "Men"},
		{"already normalized women", "Women", "Women"},
		{"unknown term passes through", "unisex", "unisex"},
		{"empty string", "", ""},
		{"unrelated value", "kids", "kids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeGender(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeGender(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeGender_Idempotent(t *testing.T) {
	inputs := []string{"male", "men", "female", "women", "Men", "Women", "unisex", ""}
	for _, in := range inputs {
		once := NormalizeGender(in)
		twice := NormalizeGender(once)
		if once != twice {
			t.Errorf("NormalizeGender not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
