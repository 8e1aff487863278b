// ============================================================================
// KENGEN - C++/Python Subset Translator
// ============================================================================
//
// Package:     version
// Description: Central version management for the translator and its parts
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all components
const (
	// Tool version
	Tool = "0.1.0"

	// Component versions
	CppFrontend    = "0.1.0"
	PythonFrontend = "0.1.0"
	Augment        = "0.1.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cpp":
		return CppFrontend
	case "python":
		return PythonFrontend
	case "augment":
		return Augment
	default:
		return Tool
	}
}

// String returns the full version line printed by the CLI
func String() string {
	return fmt.Sprintf("kengen %s (commit %s, built %s)", Tool, Commit, BuildDate)
}
