// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is an expected, fully handled condition
	SeverityLow Severity = iota

	// SeverityMedium degrades a result without failing it, e.g. a failed augmentation
	SeverityMedium

	// SeverityHigh fails the requested operation
	SeverityHigh

	// SeverityCritical means the tool itself is broken
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeGenerationError:
		return SeverityCritical
	case CodeLexError, CodeSyntaxError, CodeSemanticError, CodeConfigError, CodeInvalidConfig, CodeUnsupportedLanguage:
		return SeverityHigh
	case CodeExternalServiceError, CodeTimeout, CodeUnknown:
		return SeverityMedium
	case CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
