package app

import (
	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/logfilter"
)

// SetupLogger applies the configured log level and, when a log file is configured,
// replaces the global logger with one that also writes every record to that file.
// The returned cleanup flushes and closes the file.
func SetupLogger(cfg *config.Config) (func() error, error) {
	logger.SetLevel(cfg.ParsedLogLevel)

	if cfg.LogFile == "" {
		return func() error { return nil }, nil
	}

	l, cleanup, err := logfilter.NewTee(logfilter.Options{
		Level:    cfg.ParsedLogLevel,
		FilePath: cfg.LogFile,
		Name:     constants.ApplicationName,
	})
	if err != nil {
		return nil, err
	}

	logger.SetLogger(l)

	return func() error {
		_ = l.Sync()

		return cleanup()
	}, nil
}
