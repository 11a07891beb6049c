package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/version"
)

// TestExecuteConfigSetCommand tests that values are saved and loaded back.
func TestExecuteConfigSetCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "utilkit.yaml")

	require.NoError(t, ExecuteConfigSetCommand(context.Background(), path, "checksum_algorithm", "sha1"))
	require.NoError(t, ExecuteConfigSetCommand(context.Background(), path, "log_level", "debug"))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sha1", cfg.ChecksumAlgorithm)
	assert.Equal(t, "debug", cfg.LogLevel)

	err = ExecuteConfigSetCommand(context.Background(), path, "", "x")
	require.ErrorIs(t, err, config.ErrEmptyKey)
}

// TestExecuteVersionCommand tests the version output.
func TestExecuteVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	require.NoError(t, ExecuteVersionCommand(&out, false))
	assert.Equal(t, version.Short()+"\n", out.String())

	out.Reset()
	require.NoError(t, ExecuteVersionCommand(&out, true))
	assert.Equal(t, version.Full()+"\n", out.String())
}
