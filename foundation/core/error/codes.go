// File: codes.go
// Title: Error Codes
// Description: Machine-readable error codes grouped by category.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Code is a machine-readable error code
type Code string

const (
	// General
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Translation pipeline
	CodeLexError            Code = "LEX_ERROR"
	CodeSyntaxError         Code = "SYNTAX_ERROR"
	CodeSemanticError       Code = "SEMANTIC_ERROR"
	CodeGenerationError     Code = "GENERATION_ERROR"
	CodeUnsupportedLanguage Code = "UNSUPPORTED_LANGUAGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Collaborators
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
)

var knownCodes = map[Code]string{
	CodeUnknown:              "general",
	CodeInternal:             "general",
	CodeInvalidInput:         "general",
	CodeTimeout:              "general",
	CodeLexError:             "translation",
	CodeSyntaxError:          "translation",
	CodeSemanticError:        "translation",
	CodeGenerationError:      "translation",
	CodeUnsupportedLanguage:  "translation",
	CodeConfigError:          "configuration",
	CodeInvalidConfig:        "configuration",
	CodeExternalServiceError: "external",
}

// IsValid reports whether c is one of the declared codes
func (c Code) IsValid() bool {
	_, ok := knownCodes[c]
	return ok
}

// Category returns the group a code belongs to
func (c Code) Category() string {
	if cat, ok := knownCodes[c]; ok {
		return cat
	}
	return "unknown"
}

// IsUserError reports whether the code describes a problem with the input
// rather than with the tool
func (c Code) IsUserError() bool {
	switch c {
	case CodeInvalidInput, CodeLexError, CodeSyntaxError, CodeSemanticError, CodeUnsupportedLanguage, CodeInvalidConfig:
		return true
	}
	return false
}
