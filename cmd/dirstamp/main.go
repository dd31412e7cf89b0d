// Package main is the entry point for the dirstamp application.
package main

import (
	"os"

	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/dirstamp/internal/app"
	"github.com/joe/dirstamp/internal/config"
)

func main() {
	// Diagnostics are styled only when a person is reading stderr
	styled := term.IsTerminal(int(os.Stderr.Fd()))

	cfg, err := config.ParseFlags()
	if err != nil {
		os.Exit(app.Fail(err, os.Stderr, styled))
	}

	os.Exit(app.Run(cfg, os.Stdout, os.Stderr, styled && !cfg.NoColor))
}
