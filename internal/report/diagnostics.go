package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/dirstamp/pkg/errors"
)

// DuplicateMessage is the first line of the duplicate diagnostic.
const DuplicateMessage = "**ERROR** The same input line appears twice in a row. Aborting."

// Diagnostics writes human-readable failures to the error stream.
type Diagnostics struct {
	w      io.Writer
	styled bool
	styles styles
}

// NewDiagnostics creates a Diagnostics writing to w.
// Styling is applied only when styled is true.
func NewDiagnostics(w io.Writer, styled bool) *Diagnostics {
	return &Diagnostics{w: w, styled: styled, styles: newStyles(w)}
}

// Duplicate reports a duplicate adjacent path in exactly two lines.
func (d *Diagnostics) Duplicate(index int, path string) {
	fmt.Fprintln(d.w, d.render(d.styles.label, DuplicateMessage))
	fmt.Fprintf(d.w, "[Line %d] %s\n", index, d.render(d.styles.path, strconv.Quote(path)))
}

// Fatal reports an error that stopped the program, followed by the
// suggestions carried by an actionable error.
func (d *Diagnostics) Fatal(err error) {
	fmt.Fprintf(d.w, "%s %v\n", d.render(d.styles.label, "Error:"), err)

	if suggestions := errors.FormatSuggestions(err); suggestions != "" {
		fmt.Fprintln(d.w, d.render(d.styles.hint, suggestions))
	}
}

func (d *Diagnostics) render(style lipgloss.Style, text string) string {
	if !d.styled {
		return text
	}

	return style.Render(text)
}
