package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// reporter writes diagnostics to stderr. Colors are only used when the
// stream is a terminal; stdout is never touched.
type reporter struct {
	w       io.Writer
	verbose bool

	errorStyle lipgloss.Style
	warnStyle  lipgloss.Style
	infoStyle  lipgloss.Style
}

func newReporter(w io.Writer, verbose bool) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		w:       w,
		verbose: verbose,
		errorStyle: r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		warnStyle: r.NewStyle().
			Foreground(lipgloss.Color("214")),
		infoStyle: r.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// Error prints err as "Error: <message>"
func (r *reporter) Error(err error) {
	fmt.Fprintln(r.w, r.errorStyle.Render("Error: "+err.Error()))
}

// Warnf prints a warning in verbose mode
func (r *reporter) Warnf(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.w, r.warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Verbosef prints a trace line in verbose mode
func (r *reporter) Verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.w, r.infoStyle.Render("router-switch: "+fmt.Sprintf(format, args...)))
}
