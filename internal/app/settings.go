package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/internal/version"
)

// ExecuteConfigSetCommand stores key=value in the configuration file, creating the file if needed.
func ExecuteConfigSetCommand(ctx context.Context, configFilename, key, value string) error {
	if configFilename == "" {
		configFilename = config.DefaultConfigFilename
	}

	if err := config.SaveValue(configFilename, key, value); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.InfoKV(ctx, "Configuration updated", "file", configFilename, "key", key)

	return nil
}

// ExecuteVersionCommand prints the build metadata.
func ExecuteVersionCommand(w io.Writer, full bool) error {
	v := version.Short()
	if full {
		v = version.Full()
	}

	_, err := fmt.Fprintln(w, v)

	return err
}
