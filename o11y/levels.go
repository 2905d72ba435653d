package o11y

import (
	"log/slog"
	"strings"
)

const (
	LevelDevelop = slog.Level(-8) // Custom level for development only logging, disabled outside local builds
	LevelDebug   = slog.Level(-4) // LevelDebug represents debug-level logging
	LevelInfo    = slog.Level(0)  // LevelInfo represents informational-level logging
	LevelNotice  = slog.Level(2)  // LevelNotice represents notice-level logging
	LevelWarning = slog.Level(4)  // LevelWarning represents warning-level logging
	LevelError   = slog.Level(8)  // LevelError represents error-level logging
	LevelFatal   = slog.Level(12) // LevelFatal represents fatal-level logging
)

// StringToLevel maps a string representation of a log level to its corresponding slog.Level.
func StringToLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "develop":
		return LevelDevelop
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "notice":
		return LevelNotice
	case "warning", "warn":
		return LevelWarning
	case "error", "err":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelDebug // default to debug if unknown level
	}
}

// LevelName returns the label written to the "level" field of a log line.
func LevelName(level slog.Level) string {
	switch level {
	case LevelDevelop:
		return "DEVELOP"
	case LevelInfo:
		return "INFO"
	case LevelNotice:
		return "NOTICE"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FATAL"
	default:
		return "DEBUG"
	}
}
