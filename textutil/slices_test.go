package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFlatten tests the Flatten function.
func TestFlatten(t *testing.T) {
	t.Parallel()

	nested := [][]int{{1, 2}, {3, 4}, {5, 6, 7, 8}, {9}}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Flatten(nested))

	assert.Empty(t, Flatten[string](nil))
	assert.Equal(t, []string{"a"}, Flatten([][]string{{}, {"a"}, nil}))
}

// TestDeduplicate tests the Deduplicate function.
func TestDeduplicate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 5}, Deduplicate([]int{1, 2, 3, 2, 5, 3}))
	assert.Equal(t, []any{1, 5.0, "xyz"}, Deduplicate([]any{1, 5.0, "xyz", 5.0, 1, "xyz"}))
	assert.Empty(t, Deduplicate([]string{}))
}
