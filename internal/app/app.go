// Package app wires configuration, logging, the walk engine and reporting
// into one run and maps its outcome to a process exit status.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/joe/dirstamp/internal/config"
	"github.com/joe/dirstamp/internal/logger"
	"github.com/joe/dirstamp/internal/report"
	"github.com/joe/dirstamp/internal/walkengine"
	pkgerrors "github.com/joe/dirstamp/pkg/errors"
)

// Exit statuses. Usage errors exit with 2 from the argument parser.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitDuplicate = 3
)

// Run performs one walk as configured and returns the exit status.
// Results go to stdout, diagnostics to stderr.
func Run(cfg *config.Config, stdout, stderr io.Writer, styled bool) int {
	diagnostics := report.NewDiagnostics(stderr, styled)

	log, closeLog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return ExitStatus(err, diagnostics)
	}

	defer func() {
		_ = closeLog()
	}()

	buffered := bufio.NewWriter(stdout)

	engine := walkengine.NewEngine(cfg, report.NewOutput(buffered))
	engine.SetEventEmitter(walkengine.NewLogEmitter(log))

	runErr := engine.Run()

	// Everything emitted before a failure is still printed, ahead of the diagnostic
	if err := buffered.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to write output: %w", err)
	}

	return ExitStatus(runErr, diagnostics)
}

// Fail reports an error raised before a run could start, such as an invalid
// configuration.
func Fail(err error, stderr io.Writer, styled bool) int {
	return ExitStatus(err, report.NewDiagnostics(stderr, styled))
}

// ExitStatus prints the diagnostic for err and returns the matching status.
// A nil error is success and prints nothing.
func ExitStatus(err error, diagnostics *report.Diagnostics) int {
	if err == nil {
		return ExitOK
	}

	var dup *walkengine.DuplicateError
	if errors.As(err, &dup) {
		diagnostics.Duplicate(dup.Index, dup.Path)
		return ExitDuplicate
	}

	diagnostics.Fatal(pkgerrors.NewEnricher().Enrich(err, ""))

	return ExitFailure
}
