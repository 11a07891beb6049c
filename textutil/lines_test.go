package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsMultiline tests the IsMultiline function.
func TestIsMultiline(t *testing.T) {
	t.Parallel()

	assert.False(t, IsMultiline("single line"))
	assert.False(t, IsMultiline(""))
	assert.True(t, IsMultiline("line 1\nline 2\nline 3"))
	assert.True(t, IsMultiline("line 1\r\nline 2"))
}

// TestFindFirstLine tests the FindFirstLine function.
func TestFindFirstLine(t *testing.T) {
	t.Parallel()

	numbered := strings.Split(`0
1...... ......
2...... ......
keyword: other stuff
4...... ......
5...... ......
6...... ......
keyword: other stuff
8...... ......
9...... ......`, "\n")

	tests := []struct {
		name     string
		lines    []string
		mode     MatchMode
		start    int
		expected int
	}{
		{
			name:     "prefix",
			lines:    strings.Split("\nkeyword: other stuff\n......\n", "\n"),
			mode:     MatchPrefix,
			expected: 1,
		},
		{
			name:     "suffix",
			lines:    strings.Split("\nother stuff: keyword\n......\n", "\n"),
			mode:     MatchSuffix,
			expected: 1,
		},
		{
			name:     "contains",
			lines:    strings.Split("\nother stuff: keyword: other stuff\n......\n", "\n"),
			mode:     MatchContains,
			expected: 1,
		},
		{
			name:     "start at the match",
			lines:    numbered,
			mode:     MatchPrefix,
			start:    3,
			expected: 3,
		},
		{
			name:     "start after the first match",
			lines:    numbered,
			mode:     MatchPrefix,
			start:    4,
			expected: 7,
		},
		{
			name:     "start after every match",
			lines:    numbered,
			mode:     MatchPrefix,
			start:    8,
			expected: -1,
		},
		{
			name:     "no match",
			lines:    strings.Split("\n......\n......\n", "\n"),
			mode:     MatchPrefix,
			expected: -1,
		},
		{
			name:     "start past the last line",
			lines:    numbered,
			mode:     MatchPrefix,
			start:    100,
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, err := FindFirstLine(tt.lines, "keyword", tt.mode, tt.start, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}

// TestFindFirstLine_BoundedRange tests that the end of the range is exclusive.
func TestFindFirstLine_BoundedRange(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "keyword", "keyword"}

	index, err := FindFirstLine(lines, "keyword", MatchPrefix, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, index)

	index, err = FindFirstLine(lines, "keyword", MatchPrefix, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, index)
}

// TestFindFirstLine_Errors tests invalid arguments.
func TestFindFirstLine_Errors(t *testing.T) {
	t.Parallel()

	lines := []string{"0", "keyword: other stuff", "2", "3"}

	_, err := FindFirstLine(lines, "keyword", MatchPrefix, 2, 0)
	require.ErrorIs(t, err, ErrInvalidLineRange)

	_, err = FindFirstLine(lines, "keyword", MatchPrefix, -1, -1)
	require.ErrorIs(t, err, ErrInvalidLineRange)

	_, err = FindFirstLine(lines, "keyword", MatchMode(42), 0, -1)
	require.ErrorIs(t, err, ErrUnknownMatchMode)
}

// TestMatchMode_String tests the String method.
func TestMatchMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "startswith", MatchPrefix.String())
	assert.Equal(t, "endswith", MatchSuffix.String())
	assert.Equal(t, "contains", MatchContains.String())
	assert.Equal(t, "MatchMode(9)", MatchMode(9).String())
}
