package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/utilkit/ids"
)

// TestExecuteUUIDCommand tests identifier generation.
func TestExecuteUUIDCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	require.NoError(t, ExecuteUUIDCommand(&out, 3, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.True(t, ids.IsUUID(line), line)
	}

	assert.NotEqual(t, lines[0], lines[1])

	out.Reset()
	require.NoError(t, ExecuteUUIDCommand(&out, 0, true))

	guid := strings.TrimSpace(out.String())
	assert.True(t, ids.IsGUID(guid), guid)
	assert.Equal(t, strings.ToUpper(guid), guid)
}

// TestExecuteCheckIDCommand tests identifier classification.
func TestExecuteCheckIDCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		value       string
		expected    string
		expectError error
	}{
		{
			name:     "uuid",
			value:    "c9bf9e57-1685-4c89-bafb-ff5af830be8a",
			expected: "uuid\tc9bf9e57-1685-4c89-bafb-ff5af830be8a\n",
		},
		{
			name:     "braced guid",
			value:    " {C9BF9E57-1685-4C89-BAFB-FF5AF830BE8A} ",
			expected: "guid\t{C9BF9E57-1685-4C89-BAFB-FF5AF830BE8A}\n",
		},
		{
			name:        "invalid",
			value:       "not-an-id",
			expectError: ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			err := ExecuteCheckIDCommand(&out, tt.value)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}
