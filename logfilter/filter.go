package logfilter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LowPass enables records at or below maxLevel.
func LowPass(maxLevel zapcore.Level) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level <= maxLevel
	})
}

// HighPass enables records at or above minLevel.
func HighPass(minLevel zapcore.Level) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= minLevel
	})
}

// BandPass enables records between minLevel and maxLevel inclusive.
// Swapped bounds are put in order.
func BandPass(minLevel, maxLevel zapcore.Level) zapcore.LevelEnabler {
	if minLevel > maxLevel {
		minLevel, maxLevel = maxLevel, minLevel
	}

	return zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= minLevel && level <= maxLevel
	})
}

// Both enables records that every one of the enablers accepts.
func Both(enablers ...zapcore.LevelEnabler) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		for _, e := range enablers {
			if e != nil && !e.Enabled(level) {
				return false
			}
		}

		return true
	})
}
