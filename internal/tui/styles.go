package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	errorColor = lipgloss.Color("#EF4444") // Red
	mutedColor = lipgloss.Color("#6B7280") // Gray
)

// Styles renders status output for a specific terminal.
// Colour is dropped automatically when the writer is not a terminal.
type Styles struct {
	errorLabel  lipgloss.Style
	errorDetail lipgloss.Style
}

// NewStyles creates styles bound to the terminal behind w
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		errorLabel: r.NewStyle().
			Bold(true).
			Foreground(errorColor),
		errorDetail: r.NewStyle().
			Foreground(mutedColor),
	}
}

// RenderError renders a fatal error line
func (s Styles) RenderError(err error) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		s.errorLabel.Render("error:"),
		s.errorDetail.Render(" "+err.Error()),
	)
}
