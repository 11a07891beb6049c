package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestNotImplemented = errors.New("not implemented")

// TestDiagnosticError tests the DiagnosticError type.
func TestDiagnosticError(t *testing.T) {
	t.Parallel()

	err := NewDiagnosticError(errTestNotImplemented, "- This is a test error", "- Fix it")

	require.ErrorIs(t, err, errTestNotImplemented)
	assert.Equal(t, "Detail:\n- This is a test error\n\nAdvice:\n- Fix it", err.Error())

	var diagnostic *DiagnosticError
	require.ErrorAs(t, err, &diagnostic)
	assert.Equal(t, "- Fix it", diagnostic.Advice)
}

// TestDiagnosticError_EmptySections tests rendering of empty sections.
func TestDiagnosticError_EmptySections(t *testing.T) {
	t.Parallel()

	err := NewDiagnosticError(nil, "", " ")

	assert.Equal(t, "Detail:\n- (N/A)\n\nAdvice:\n- (N/A)", err.Error())
	assert.NoError(t, errors.Unwrap(err))
}
