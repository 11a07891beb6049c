package logfilter

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/utilkit/internal/constants"
)

// Options configures NewTee.
type Options struct {
	// Level gates everything written to the console. Defaults to info.
	Level zapcore.LevelEnabler
	// Stdout receives records below warning. Defaults to os.Stdout.
	Stdout zapcore.WriteSyncer
	// Stderr receives warnings and above. Defaults to os.Stderr.
	Stderr zapcore.WriteSyncer
	// FilePath, when set, receives every record from debug up as JSON.
	FilePath string
	// Name is the logger name.
	Name string
}

// NewTee builds a logger that writes info-and-below to stdout, warnings-and-above to stderr
// and everything to the optional log file. The returned cleanup closes the file.
func NewTee(opts Options) (*zap.Logger, func() error, error) {
	if opts.Level == nil {
		opts.Level = zapcore.InfoLevel
	}

	if opts.Stdout == nil {
		opts.Stdout = zapcore.Lock(os.Stdout)
	}

	if opts.Stderr == nil {
		opts.Stderr = zapcore.Lock(os.Stderr)
	}

	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig())

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, opts.Stdout, Both(opts.Level, LowPass(zapcore.InfoLevel))),
		zapcore.NewCore(consoleEncoder, opts.Stderr, Both(opts.Level, HighPass(zapcore.WarnLevel))),
	}

	cleanup := func() error { return nil }

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), constants.DefaultFolderPermissions); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		f, err := os.OpenFile(filepath.Clean(opts.FilePath),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.DefaultFilePermissions)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(f), zapcore.DebugLevel))
		cleanup = f.Close
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if opts.Name != "" {
		logger = logger.Named(opts.Name)
	}

	return logger, cleanup, nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
