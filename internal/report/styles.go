package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	errorColorCode = "196" // Red
	dimColorCode   = "240" // Dark gray
	pathColorCode  = "86"  // Cyan
)

// styles holds the lipgloss styles for one output stream.
// Each stream gets its own renderer so color detection follows that stream.
type styles struct {
	label lipgloss.Style
	path  lipgloss.Style
	hint  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)

	return styles{
		label: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(errorColorCode)),
		path:  renderer.NewStyle().Foreground(lipgloss.Color(pathColorCode)),
		hint:  renderer.NewStyle().Foreground(lipgloss.Color(dimColorCode)),
	}
}
