// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Diagnostic components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	PluginID   lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Result styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// ANSI palette used throughout the styled output.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorBlue   = lipgloss.Color("12")
	colorCyan   = lipgloss.Color("14")
	colorGray   = lipgloss.Color("8")
	colorWhite  = lipgloss.Color("7")
)

// NewStyles creates a Styles set; with color disabled every style renders
// plain text.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{}
	}

	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(colorGray)

	return &Styles{
		Error:   bold.Foreground(colorRed),
		Warning: bold.Foreground(colorYellow),
		Info:    bold.Foreground(colorBlue),

		FilePath:   bold,
		Location:   dim,
		PluginID:   dim,
		Message:    lipgloss.NewStyle(),
		Suggestion: lipgloss.NewStyle().Foreground(colorGreen).Italic(true),
		SourceLine: lipgloss.NewStyle().Foreground(colorWhite),
		Caret:      lipgloss.NewStyle().Foreground(colorRed),

		DiffHeader:  bold,
		DiffHunk:    lipgloss.NewStyle().Foreground(colorCyan),
		DiffAdd:     lipgloss.NewStyle().Foreground(colorGreen),
		DiffRemove:  lipgloss.NewStyle().Foreground(colorRed),
		DiffContext: dim,

		Success: bold.Foreground(colorGreen),
		Failure: bold.Foreground(colorRed),

		Dim:  dim,
		Bold: bold,
	}
}

// IsColorEnabled decides whether to colorize output for the given writer.
// Mode values: "auto" (default), "always", "never". In auto mode color is
// used only when the writer is a terminal and NO_COLOR is unset
// (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
