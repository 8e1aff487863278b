// Package log provides structured logging for the KENGEN translator.
//
// Package: log
// Title: KENGEN Structured Logging
// Description: Leveled, structured logging with JSON and text output, contextual
//              fields, request IDs, stage timers and integration with the coded
//              errors of the error package.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithRequestID(id).WithField("from", "cpp")
//	timer := logger.StartTimer("parse")
//	prog, err := parse(tokens)
//	if err != nil {
//		timer.StopWithError(err)
//	}
//	timer.Stop()
package log
