// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter log output.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is used for token and tree dumps
	LevelTrace Level = iota

	// LevelDebug reports stage boundaries and timings
	LevelDebug

	// LevelInfo reports finished translations
	LevelInfo

	// LevelWarn reports recoverable problems such as a failed augmentation
	LevelWarn

	// LevelError reports failed operations
	LevelError

	// LevelFatal is logged right before the process exits
	LevelFatal
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// ShouldLog reports whether a message at level l passes the minimum level
func (l Level) ShouldLog(minimum Level) bool {
	return l >= minimum
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}

// ParseError is returned when a level or format name is not recognised
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid log %s: %q", e.Type, e.Input)
}

// ParseLevel parses a level name; "warning" is accepted for warn
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return DefaultLevel(), &ParseError{Input: level, Type: "level"}
	}
}
