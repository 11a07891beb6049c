package procutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCappedBuffer tests the cappedBuffer writer.
func TestCappedBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		limit             int64
		writes            []string
		expected          string
		expectedTruncated bool
	}{
		{
			name:     "unlimited",
			limit:    0,
			writes:   []string{"hello ", "world"},
			expected: "hello world",
		},
		{
			name:     "within limit",
			limit:    20,
			writes:   []string{"hello ", "world"},
			expected: "hello world",
		},
		{
			name:              "split write at limit",
			limit:             8,
			writes:            []string{"hello ", "world"},
			expected:          "hello wo",
			expectedTruncated: true,
		},
		{
			name:              "writes after the limit are dropped",
			limit:             5,
			writes:            []string{"hello", " ", "world"},
			expected:          "hello",
			expectedTruncated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &cappedBuffer{limit: tt.limit}

			for _, w := range tt.writes {
				n, err := b.Write([]byte(w))
				assert.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			assert.Equal(t, tt.expected, b.String())
			assert.Equal(t, tt.expectedTruncated, b.truncated())
		})
	}
}

// TestLastLine tests the lastLine function.
func TestLastLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "third", lastLine("first\nsecond\nthird\n"))
	assert.Equal(t, "only", lastLine("  only  "))
	assert.Empty(t, lastLine(""))
	assert.Equal(t, "b", lastLine("a\r\nb\r\n"))
}
