package textutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadLines tests the ReadLines function.
func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "unique lines",
			content:  "a/b/c\nd/e\n",
			expected: []string{"a/b/c", "d/e"},
		},
		{
			name:     "duplicates and blanks",
			content:  "  x  \n\n\ty\nx\n   \ny\n",
			expected: []string{"x", "y"},
		},
		{
			name:     "windows line endings",
			content:  "C:\\a\r\nC:\\b\r\n",
			expected: []string{`C:\a`, `C:\b`},
		},
		{
			name:     "empty input",
			content:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines, err := ReadLines(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

// TestReadLinesFromFile tests the ReadLinesFromFile function.
func TestReadLinesFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paths.txt")
	require.NoError(t, os.WriteFile(path, []byte("/a/b\n/a/c\n/a/b\n"), 0o600))

	lines, err := ReadLinesFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b", "/a/c"}, lines)

	_, err = ReadLinesFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
