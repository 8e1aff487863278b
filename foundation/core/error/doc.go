// Package error provides coded, wrappable errors for KENGEN.
//
// Package: error
// Title: KENGEN Error Handling
// Description: Structured errors carrying a machine-readable code, a severity,
//              free-form details and the failing operation. Errors wrap a cause
//              and work with errors.Is and errors.As.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	import mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
//
//	return mdwerror.Wrap(err, "tokenize cpp source").
//		WithCode(mdwerror.CodeLexError).
//		WithOperation("translate.tokenize")
package error
