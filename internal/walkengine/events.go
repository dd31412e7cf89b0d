package walkengine

import (
	"time"

	"github.com/joe/dirstamp/internal/config"
)

// Event is the interface implemented by all walk engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// WalkStarted is emitted before the first entry is read.
type WalkStarted struct {
	Root string
	Mode config.Mode
}

func (WalkStarted) isEvent() {}

// EntrySkipped is emitted when the walker could not read an entry.
// The entry is dropped from the stream.
type EntrySkipped struct {
	Path string
	Err  error
}

func (EntrySkipped) isEvent() {}

// EntryExcluded is emitted when an entry matches the exclude pattern.
// Excluded directories are pruned along with everything below them.
type EntryExcluded struct {
	Path  string
	IsDir bool
}

func (EntryExcluded) isEvent() {}

// DuplicateFound is emitted when the guard halts the walk.
type DuplicateFound struct {
	Index int
	Path  string
}

func (DuplicateFound) isEvent() {}

// WalkComplete is emitted when the stream is exhausted without error.
type WalkComplete struct {
	Root    string
	Emitted int
	Skipped int
	Elapsed time.Duration
}

func (WalkComplete) isEvent() {}

// ErrorOccurred is emitted when an error stops the walk.
type ErrorOccurred struct {
	Phase string
	Err   error
}

func (ErrorOccurred) isEvent() {}
