package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles formats the CLI's own messages for a given writer.
type Styles struct {
	Error   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates message styles bound to w's color capabilities.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Heading: r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Underline(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
