// Package report renders walk results on stdout and diagnostics on stderr.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/joe/dirstamp/pkg/timestamps"
)

// Output writes one record per entry to the result stream.
type Output struct {
	w io.Writer
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Path writes the path on a line of its own.
func (o *Output) Path(path string) error {
	if _, err := io.WriteString(o.w, path+"\n"); err != nil {
		return fmt.Errorf("failed to write path: %w", err)
	}

	return nil
}

// Stamps writes the timestamp block for one file:
//
//	path=<path>
//	btime=<iso> btime_system=<native> btime_unix=<sec>,<nsec> btime_elapsed=<duration>
//	mtime=<iso> mtime_system=<native> mtime_unix=<sec>,<nsec> mtime_elapsed=<duration>
//	ctime=<iso>
//
// The block is written in a single call so a failing entry never leaves a
// partial record behind.
func (o *Output) Stamps(path string, triple timestamps.Triple) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "path=%s\n", path)
	writeStampLine(&builder, "btime", triple.Created)
	writeStampLine(&builder, "mtime", triple.Modified)
	fmt.Fprintf(&builder, "ctime=%s\n", triple.StatusChanged.ISO())

	if _, err := io.WriteString(o.w, builder.String()); err != nil {
		return fmt.Errorf("failed to write timestamps for %s: %w", path, err)
	}

	return nil
}

func writeStampLine(builder *strings.Builder, label string, stamp timestamps.Stamp) {
	fmt.Fprintf(builder, "%s=%s %s_system=%+v %s_unix=%s %s_elapsed=%s\n",
		label, stamp.ISO(),
		label, stamp.Native,
		label, stamp.Native.Unix(),
		label, stamp.Elapsed)
}
