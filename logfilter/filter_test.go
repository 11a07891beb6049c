package logfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

var allLevels = []zapcore.Level{
	zapcore.DebugLevel,
	zapcore.InfoLevel,
	zapcore.WarnLevel,
	zapcore.ErrorLevel,
	zapcore.DPanicLevel,
	zapcore.PanicLevel,
	zapcore.FatalLevel,
}

// enabledLevels returns the levels the enabler accepts.
func enabledLevels(enabler zapcore.LevelEnabler) []zapcore.Level {
	var result []zapcore.Level

	for _, level := range allLevels {
		if enabler.Enabled(level) {
			result = append(result, level)
		}
	}

	return result
}

// TestFilters tests the LowPass, HighPass, BandPass and Both filters.
func TestFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enabler  zapcore.LevelEnabler
		expected []zapcore.Level
	}{
		{
			name:     "low pass info",
			enabler:  LowPass(zapcore.InfoLevel),
			expected: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel},
		},
		{
			name:     "high pass error",
			enabler:  HighPass(zapcore.ErrorLevel),
			expected: []zapcore.Level{zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel},
		},
		{
			name:     "band pass info to warn",
			enabler:  BandPass(zapcore.InfoLevel, zapcore.WarnLevel),
			expected: []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel},
		},
		{
			name:     "band pass with swapped bounds",
			enabler:  BandPass(zapcore.WarnLevel, zapcore.InfoLevel),
			expected: []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel},
		},
		{
			name:     "both",
			enabler:  Both(zapcore.InfoLevel, LowPass(zapcore.WarnLevel)),
			expected: []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel},
		},
		{
			name:     "both without enablers accepts everything",
			enabler:  Both(),
			expected: allLevels,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, enabledLevels(tt.enabler))
		})
	}
}
