package drivepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSanitizeSegment tests the SanitizeSegment function.
func TestSanitizeSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid name",
			input:    "report-2026.txt",
			expected: "report-2026.txt",
		},
		{
			name:     "separators and forbidden characters",
			input:    `a/b\c:d*e?f"g<h>i|j`,
			expected: "a_b_c_d_e_f_g_h_i_j",
		},
		{
			name:     "control characters",
			input:    "tab\there\x00",
			expected: "tab_here_",
		},
		{
			name:     "reserved device name",
			input:    "con",
			expected: "_con",
		},
		{
			name:     "reserved device name with extension",
			input:    "NUL.tar.gz",
			expected: "_NUL.tar.gz",
		},
		{
			name:     "reserved name as part of a longer name",
			input:    "console.log",
			expected: "console.log",
		},
		{
			name:     "trailing dots and spaces",
			input:    "draft. . ",
			expected: "draft",
		},
		{
			name:     "only dots",
			input:    "...",
			expected: "_",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "unicode is kept",
			input:    "Straße ÄPFEL",
			expected: "Straße ÄPFEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SanitizeSegment(tt.input))
		})
	}
}
