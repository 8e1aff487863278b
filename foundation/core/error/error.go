// File: error.go
// Title: Core Error Implementation
// Description: The Error type with code, severity, details, operation and
//              cause, plus helpers to inspect error chains.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error represents a structured error with a code and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. A wrapped *Error
// passes its code and severity on to the new error. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := New(message)
	wrapped.cause = err

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.operation = inner.operation
	}
	return wrapped
}

// WithCode sets the code and the severity that goes with it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches a key/value pair
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation records the failing operation
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.code != "" && e.code != CodeUnknown {
		fmt.Fprintf(&b, "[%s] ", e.code)
	}
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.cause }

// Message returns the message without code prefix or cause
func (e *Error) Message() string { return e.message }

// Code returns the error code
func (e *Error) Code() Code { return e.code }

// Severity returns the severity
func (e *Error) Severity() Severity { return e.severity }

// Operation returns the failing operation, if recorded
func (e *Error) Operation() string { return e.operation }

// Details returns a copy of the attached details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// MarshalJSON renders the error for structured logs and CLI JSON output
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// GetCode returns the code of the outermost *Error in err's chain,
// or CodeUnknown when there is none
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// HasCode reports whether any *Error in err's chain carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// DetailKeys returns the detail keys in sorted order
func (e *Error) DetailKeys() []string {
	keys := make([]string, 0, len(e.details))
	for k := range e.details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
