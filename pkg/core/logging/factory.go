// ============================================================================
// KENGEN - C++/Python Subset Translator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/Arking-xx/College-Thesis/foundation/core/log"
	"github.com/Arking-xx/College-Thesis/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format, "json" or "text" (default: text)
	Format string

	// Output writer (default: stderr, leaving stdout to generated code)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives a logger configuration from the general section
func FromConfig(name string, general config.GeneralConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(name)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	return cfg
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	// Unknown values fall back to the defaults of the parse functions
	level, _ := mdwlog.ParseLevel(cfg.Level)
	format, _ := mdwlog.ParseFormat(strings.ToLower(cfg.Format))

	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// Logger wraps the Foundation logger with key-value logging methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap adapts an existing Foundation logger
func Wrap(logger *mdwlog.Logger, name string) *Logger {
	return &Logger{Logger: logger, name: name}
}

// Name returns the component name
func (l *Logger) Name() string {
	return l.name
}

// With returns a logger carrying the given key-value pairs on every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
