// Package walkengine runs a walk through the filter pipeline and the duplicate
// guard, and reports every surviving entry in the configured mode.
package walkengine

import (
	"errors"
	"fmt"

	"github.com/joe/dirstamp/internal/config"
	"github.com/joe/dirstamp/internal/report"
	"github.com/joe/dirstamp/pkg/filesystem"
	"github.com/joe/dirstamp/pkg/timestamps"
)

// ScannerFactory opens a scanner for a walk root. The returned closer is never nil
// when err is nil.
type ScannerFactory func(root string) (filesystem.Scanner, func(), error)

// Engine walks one root and writes a record per surviving entry.
type Engine struct {
	Root    string
	Mode    config.Mode
	Exclude string

	// Injected dependencies. NewEngine fills in the real implementations.
	Open       ScannerFactory
	Normalizer *timestamps.Normalizer
	Clock      timestamps.Clock

	output  *report.Output
	emitter EventEmitter
}

// NewEngine creates an engine for the configured mode. Results go to out.
func NewEngine(cfg *config.Config, out *report.Output) *Engine {
	return &Engine{
		Root:       cfg.WalkRoot(),
		Mode:       cfg.Mode,
		Exclude:    cfg.Exclude,
		Open:       openScanner,
		Normalizer: timestamps.NewNormalizer(),
		Clock:      timestamps.RealClock{},
		output:     out,
	}
}

// SetEventEmitter sets the event emitter for the engine.
// Pass nil to disable event emission.
func (e *Engine) SetEventEmitter(emitter EventEmitter) {
	e.emitter = emitter
}

// GetEventEmitter returns the current event emitter (may be nil).
func (e *Engine) GetEventEmitter() EventEmitter {
	return e.emitter
}

// Run walks the root to the end or to the first error.
// A duplicate adjacent path is returned as a *DuplicateError.
func (e *Engine) Run() error {
	source, closer, err := e.Open(e.Root)
	if err != nil {
		e.emit(ErrorOccurred{Phase: "open", Err: err})
		return fmt.Errorf("failed to open %s: %w", e.Root, err)
	}
	defer closer()

	if walker, ok := source.(*filesystem.WalkScanner); ok {
		walker.OnSkip = func(path string, err error) {
			e.emit(EntrySkipped{Path: path, Err: err})
		}
	}

	e.emit(WalkStarted{Root: e.Root, Mode: e.Mode})
	start := e.Clock.Now()

	guard := e.pipeline(source)
	emitted := 0

	for {
		entry, ok := guard.Next()
		if !ok {
			break
		}

		if err := e.report(entry); err != nil {
			e.emit(ErrorOccurred{Phase: e.Mode.String(), Err: err})
			return err
		}

		emitted++
	}

	if err := guard.Err(); err != nil {
		var dup *DuplicateError
		if errors.As(err, &dup) {
			e.emit(DuplicateFound{Index: dup.Index, Path: dup.Path})
		} else {
			e.emit(ErrorOccurred{Phase: "walk", Err: err})
		}

		return err
	}

	e.emit(WalkComplete{
		Root:    e.Root,
		Emitted: emitted,
		Skipped: skippedCount(source),
		Elapsed: e.Clock.Now().Sub(start),
	})

	return nil
}

// emit sends an event if an emitter is configured.
func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

// pipeline stacks the exclude filter, the mode's selector and the guard on source.
func (e *Engine) pipeline(source filesystem.Scanner) *DuplicateGuard {
	stage := source

	if e.Exclude != "" {
		exclude := NewExcludeScanner(stage, NewGlobFilter(e.Exclude))
		exclude.OnExclude = func(entry filesystem.Entry) {
			e.emit(EntryExcluded{Path: entry.Path, IsDir: entry.IsDir})
		}
		stage = exclude
	}

	if e.Mode == config.ModeStamps {
		stage = RegularFilesOnly(stage)
	} else {
		stage = FilesOnly(stage)
	}

	return NewDuplicateGuard(stage)
}

func (e *Engine) report(entry filesystem.Entry) error {
	if e.Mode != config.ModeStamps {
		return e.output.Path(entry.Path)
	}

	triple, err := e.Normalizer.Normalize(entry.Path)
	if err != nil {
		return err
	}

	return e.output.Stamps(entry.Path, triple)
}

func openScanner(root string) (filesystem.Scanner, func(), error) {
	scanner, closer, err := filesystem.Open(root)
	if err != nil {
		return nil, nil, err
	}

	return scanner, closer, nil
}

func skippedCount(source filesystem.Scanner) int {
	if counter, ok := source.(interface{ Skipped() int }); ok {
		return counter.Skipped()
	}

	return 0
}
