package walkengine

import (
	"errors"
	"fmt"

	"github.com/joe/dirstamp/pkg/filesystem"
)

// ErrDuplicateAdjacentPath is matched (errors.Is) by every DuplicateError.
var ErrDuplicateAdjacentPath = errors.New("the same path appears twice in a row")

// DuplicateError reports where the guard halted.
type DuplicateError struct {
	// Index is the 0-based position of the second occurrence in the guarded stream
	Index int
	Path  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%v: line %d: %q", ErrDuplicateAdjacentPath, e.Index, e.Path)
}

// Is lets errors.Is match ErrDuplicateAdjacentPath.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateAdjacentPath
}

// GuardState is the state of a DuplicateGuard.
type GuardState int

// Guard states. Halted is terminal.
const (
	GuardArmed GuardState = iota
	GuardRunning
	GuardHalted
)

func (s GuardState) String() string {
	switch s {
	case GuardArmed:
		return "armed"
	case GuardRunning:
		return "running"
	case GuardHalted:
		return "halted"
	default:
		return fmt.Sprintf("GuardState(%d)", int(s))
	}
}

// DuplicateGuard passes entries through unchanged until one has the same path
// as the entry before it. From then on it yields nothing and Err reports the
// duplicate.
type DuplicateGuard struct {
	source   filesystem.Scanner
	state    GuardState
	previous string
	index    int
	err      error
}

// NewDuplicateGuard wraps source. Nothing is read until the first Next.
func NewDuplicateGuard(source filesystem.Scanner) *DuplicateGuard {
	return &DuplicateGuard{source: source}
}

// Next returns the next entry, or false once the source is exhausted or a
// duplicate has been seen.
func (g *DuplicateGuard) Next() (filesystem.Entry, bool) {
	if g.state == GuardHalted {
		return filesystem.Entry{}, false
	}

	entry, ok := g.source.Next()
	if !ok {
		return filesystem.Entry{}, false
	}

	index := g.index
	g.index++

	if g.state == GuardRunning && entry.Path == g.previous {
		g.state = GuardHalted
		g.err = &DuplicateError{Index: index, Path: entry.Path}

		return filesystem.Entry{}, false
	}

	g.state = GuardRunning
	g.previous = entry.Path

	return entry, true
}

// Err returns the *DuplicateError after a halt, otherwise the source's error.
func (g *DuplicateGuard) Err() error {
	if g.err != nil {
		return g.err
	}

	return g.source.Err()
}

// State returns the guard's current state.
func (g *DuplicateGuard) State() GuardState {
	return g.state
}
