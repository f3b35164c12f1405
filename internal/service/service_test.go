package service

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Processing alias",
			input:    "processing",
			expected: "Payment Processing",
		},
		{
			name:     "FX alias",
			input:    "fx",
			expected: "FX Management",
		},
		{
			name:     "Risk alias",
			input:    "risk",
			expected: "Risk Management",
		},
		{
			name:     "Canonical form passes through",
			input:    "Payment Processing",
			expected: "Payment Processing",
		},
		{
			name:     "Case insensitive",
			input:    "FX MANAGEMENT",
			expected: "FX Management",
		},
		{
			name:     "Surrounding whitespace ignored",
			input:    "  compliance  ",
			expected: "Compliance",
		},
		{
			name:     "Unknown value unchanged",
			input:    "Custom Category",
			expected: "Custom Category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeCategory(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
