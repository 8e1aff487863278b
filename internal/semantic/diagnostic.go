package semantic

import (
	"fmt"

	"github.com/Arking-xx/College-Thesis/internal/token"
)

// Severity distinguishes blocking errors from advisory warnings
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// MarshalText renders the severity in lower case for JSON and YAML output
func (s Severity) MarshalText() ([]byte, error) {
	if s == SeverityWarning {
		return []byte("warning"), nil
	}
	return []byte("error"), nil
}

// Diagnostic is a single semantic finding
type Diagnostic struct {
	Severity Severity  `json:"severity" yaml:"severity"`
	Message  string    `json:"message" yaml:"message"`
	Pos      token.Pos `json:"pos" yaml:"pos"`
}

// String renders the diagnostic as "Error: message (line L, column C)"
func (d Diagnostic) String() string {
	if !d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s (line %d, column %d)", d.Severity, d.Message, d.Pos.Line, d.Pos.Column)
}

// Diagnostics is an ordered list of findings
type Diagnostics []Diagnostic

// Errorf appends an error
func (ds *Diagnostics) Errorf(pos token.Pos, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...), Pos: pos})
}

// Warnf appends a warning
func (ds *Diagnostics) Warnf(pos token.Pos, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Pos: pos})
}

// HasErrors reports whether any finding blocks generation
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the blocking findings in order
func (ds Diagnostics) Errors() Diagnostics {
	return ds.filter(SeverityError)
}

// Warnings returns the advisory findings in order
func (ds Diagnostics) Warnings() Diagnostics {
	return ds.filter(SeverityWarning)
}

// Strings renders every finding
func (ds Diagnostics) Strings() []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func (ds Diagnostics) filter(s Severity) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}
