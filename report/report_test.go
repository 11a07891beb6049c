package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testDetail = "- detail 1\n- detail 2\n- detail 3"
	testAdvice = "- advice 1\n- advice 2\n- advice 3"
)

// TestFormatErrorMessage tests the FormatErrorMessage function.
func TestFormatErrorMessage(t *testing.T) {
	t.Parallel()

	got := FormatErrorMessage(
		"task result is wrong",
		100,
		-100,
		"did you forget to take its absolute value?",
		"aborted",
	)

	assert.Equal(t, `task result is wrong:
- Expected: 100
- Got: -100
- Advice: did you forget to take its absolute value?
- Reaction: aborted`, got)
}

// TestShowResults tests the ShowResults function.
//
//nolint:funlen // Table of full report renderings.
func TestShowResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		succeeded bool
		detail    string
		advice    string
		dryRun    bool
		expected  string
	}{
		{
			name:      "succeeded with full input",
			succeeded: true,
			detail:    testDetail,
			advice:    testAdvice,
			expected: `
*** SUCCEEDED ***

Detail:
- detail 1
- detail 2
- detail 3

Next:
- advice 1
- advice 2
- advice 3`,
		},
		{
			name:      "succeeded without detail",
			succeeded: true,
			advice:    testAdvice,
			expected: `
*** SUCCEEDED ***

Detail:
- (N/A)

Next:
- advice 1
- advice 2
- advice 3`,
		},
		{
			name:      "succeeded without anything",
			succeeded: true,
			expected: `
*** SUCCEEDED ***

Detail:
- (N/A)

Next:
- (N/A)`,
		},
		{
			name:   "failed with full input",
			detail: testDetail,
			advice: testAdvice,
			expected: `
* FAILED *

Detail:
- detail 1
- detail 2
- detail 3

Advice:
- advice 1
- advice 2
- advice 3`,
		},
		{
			name:   "failed without detail",
			advice: testAdvice,
			expected: `
* FAILED *

Detail:
- (N/A)

Advice:
- advice 1
- advice 2
- advice 3`,
		},
		{
			name: "failed without anything",
			expected: `
* FAILED *

Detail:
- (N/A)

Advice:
- (N/A)`,
		},
		{
			name:   "dry run",
			dryRun: true,
			expected: `
** DRYRUN **

Detail:
- (N/A)

Advice:
- (N/A)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ShowResults(tt.succeeded, tt.detail, tt.advice, tt.dryRun))
		})
	}
}
