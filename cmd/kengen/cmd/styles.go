package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Arking-xx/College-Thesis/internal/semantic"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderDiagnostics prints one line per finding, prefixed with the file name
func renderDiagnostics(w io.Writer, file string, diags semantic.Diagnostics) {
	for _, d := range diags {
		label := errorStyle.Render("error")
		if d.Severity == semantic.SeverityWarning {
			label = warningStyle.Render("warning")
		}
		where := file
		if d.Pos.IsValid() {
			where = fmt.Sprintf("%s:%d:%d", file, d.Pos.Line, d.Pos.Column)
		}
		fmt.Fprintf(w, "%s %s: %s\n", mutedStyle.Render(where), label, d.Message)
	}
}

func summary(diags semantic.Diagnostics) string {
	errs, warns := len(diags.Errors()), len(diags.Warnings())
	if errs == 0 && warns == 0 {
		return successStyle.Render("no issues found")
	}
	text := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if errs > 0 {
		return errorStyle.Render(text)
	}
	return warningStyle.Render(text)
}
