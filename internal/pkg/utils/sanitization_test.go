package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDocumentFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Spaces Become Underscores",
			input:    "Plan of Care",
			expected: "Plan_of_Care.pdf",
		},
		{
			name:     "Existing Extension Is Kept",
			input:    "summary.pdf",
			expected: "summary.pdf",
		},
		{
			name:     "Uppercase Extension Is Accepted",
			input:    "Summary.PDF",
			expected: "Summary.PDF",
		},
		{
			name:     "Special Characters Are Replaced",
			input:    "order #12 (final)",
			expected: "order__12__final_.pdf",
		},
		{
			name:     "Empty Name Falls Back",
			input:    "   ",
			expected: "order.pdf",
		},
		{
			name:     "Safe Characters Survive",
			input:    "visit_2024-06.15",
			expected: "visit_2024-06.15.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeDocumentFileName(tt.input))
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "agent@example.com", SanitizeEmail("  Agent@Example.COM "))
	assert.Equal(t, "", SanitizeEmail("   "))
}
