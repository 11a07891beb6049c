package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/utilkit/logfilter"
)

type contextKey struct{}

var (
	//nolint:gochecknoglobals // The global level is shared by every logger created without an explicit level.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	//nolint:gochecknoglobals // The global logger is initialized once and replaced only through SetLogger.
	globalLogger = New(globalLevel)

	//nolint:gochecknoglobals // Guards globalLogger.
	globalMu sync.RWMutex
)

// New creates a console logger gated by level.
// Records up to info go to stdout, warnings and above go to stderr.
// A nil level means the global level.
func New(level zapcore.LevelEnabler) *zap.Logger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout),
			logfilter.Both(level, logfilter.LowPass(zapcore.InfoLevel))),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr),
			logfilter.Both(level, logfilter.HighPass(zapcore.WarnLevel))),
	)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// ParseLogLevel converts a level name such as "debug" or " Info " into a zap level.
// The second result is false, and the level is info, if the name is not recognized.
func ParseLogLevel(name string) (zapcore.Level, bool) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || name == "" {
		return zapcore.InfoLevel, false
	}

	return level, true
}

// Level returns the global log level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the global log level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug records are enabled globally.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return globalLogger
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalLogger = l
}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger carried by ctx, or the global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	return Logger()
}

// WithName returns a copy of ctx whose logger has the given name appended.
func WithName(ctx context.Context, name string) context.Context {
	return ToContext(ctx, FromContext(ctx).Named(name))
}

// WithKV returns a copy of ctx whose logger carries the given key-value pairs.
func WithKV(ctx context.Context, keysAndValues ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(toFields(keysAndValues)...))
}

func sugared(ctx context.Context) *zap.SugaredLogger {
	return FromContext(ctx).Sugar()
}

func toFields(keysAndValues []any) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2+1)

	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "!BADKEY"
		}

		if i+1 >= len(keysAndValues) {
			fields = append(fields, zap.Any(key, nil))

			break
		}

		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}

	return fields
}

// Debug logs args at debug level.
func Debug(ctx context.Context, args ...any) {
	sugared(ctx).Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(ctx context.Context, message string, keysAndValues ...any) {
	sugared(ctx).Debugw(message, keysAndValues...)
}

// Info logs args at info level.
func Info(ctx context.Context, args ...any) {
	sugared(ctx).Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	sugared(ctx).Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(ctx context.Context, message string, keysAndValues ...any) {
	sugared(ctx).Infow(message, keysAndValues...)
}

// Warn logs args at warn level.
func Warn(ctx context.Context, args ...any) {
	sugared(ctx).Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(ctx context.Context, message string, keysAndValues ...any) {
	sugared(ctx).Warnw(message, keysAndValues...)
}

// Error logs args at error level.
func Error(ctx context.Context, args ...any) {
	sugared(ctx).Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(ctx context.Context, message string, keysAndValues ...any) {
	sugared(ctx).Errorw(message, keysAndValues...)
}

// Fatal logs args at fatal level and exits.
func Fatal(ctx context.Context, args ...any) {
	sugared(ctx).Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Fatalf(format, args...)
}

// FatalKV logs a message with key-value pairs at fatal level and exits.
func FatalKV(ctx context.Context, message string, keysAndValues ...any) {
	sugared(ctx).Fatalw(message, keysAndValues...)
}
