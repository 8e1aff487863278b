// Package semantic holds the pieces shared by the grammar analyzers: the
// type vocabulary, the frame-stack symbol table and the diagnostic list.
//
// A Scope is created fresh for each analysis and is not safe for
// concurrent use. Diagnostics are accumulated in source order; errors block
// generation, warnings never do.
package semantic
