package service

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple name",
			input:    "Integration",
			expected: "integration",
		},
		{
			name:     "Name with spaces",
			input:    "FX Management",
			expected: "fx-management",
		},
		{
			name:     "Ampersand collapses",
			input:    "Payments & Custody",
			expected: "payments-custody",
		},
		{
			name:     "Leading and trailing punctuation trimmed",
			input:    "  --Risk Management!  ",
			expected: "risk-management",
		},
		{
			name:     "Consecutive separators collapse",
			input:    "A   &   B",
			expected: "a-b",
		},
		{
			name:     "Digits survive",
			input:    "Tier 1 Support",
			expected: "tier-1-support",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
