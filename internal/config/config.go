// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/joe/dirstamp/pkg/filesystem"
)

// Exported constants.
const (
	// DefaultRoot is walked in paths mode when no root argument is given
	DefaultRoot = "."
	// DefaultStampRoot is walked in stamps mode regardless of the root argument
	DefaultStampRoot = "src"
	// DefaultLogLevel applies to the debug log when --log-file is set
	DefaultLogLevel = "debug"
)

// Mode selects what is reported for each file
type Mode int

const (
	// ModePaths prints the path of every file
	ModePaths Mode = iota
	// ModeStamps prints creation, modification and status-change times of every file
	ModeStamps
)

// String returns the string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModePaths:
		return "paths"
	case ModeStamps:
		return "stamps"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(s)
	switch s {
	case "paths", "path":
		return ModePaths, nil
	case "stamps", "stamp", "times", "ctime":
		return ModeStamps, nil
	default:
		return ModePaths, fmt.Errorf("invalid mode: %s (valid: paths, stamps)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Config holds the application configuration
type Config struct {
	Root      string `arg:"positional" help:"Root to walk: a local path or sftp://user@host[:port]/path (default: .)"`
	Mode      Mode   `arg:"-m,--mode" default:"paths" help:"What to report per file: paths|stamps"`
	StampRoot string `arg:"--stamp-root" default:"src" help:"Directory walked in stamps mode (the root argument is not used there)"`
	Exclude   string `arg:"-x,--exclude" help:"Glob (doublestar syntax) of paths relative to the root to leave out"`
	LogFile   string `arg:"--log-file" help:"Write a debug log of the walk to this file"`
	LogLevel  string `arg:"--log-level" default:"debug" help:"Level of the debug log: trace|debug|info|warn|error"`
	NoColor   bool   `arg:"--no-color" help:"Never color diagnostics"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Walk a directory tree and print each file's path, or its creation, modification and status-change times"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "dirstamp 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := defaultConfig()

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// Parse parses the given arguments (without the program name).
// Help and version requests are returned as arg.ErrHelp and arg.ErrVersion.
func Parse(args []string) (*Config, error) {
	cfg := defaultConfig()

	parser, err := arg.NewParser(arg.Config{Program: "dirstamp"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	if err := parser.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck // arg.ErrHelp and arg.ErrVersion are compared by identity
	}

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies defaults and validates a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}

	if cfg.StampRoot == "" {
		cfg.StampRoot = DefaultStampRoot
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the roots, exclude pattern and log level are usable
func (cfg *Config) Validate() error {
	if _, err := filesystem.ParsePath(cfg.Root); err != nil {
		return fmt.Errorf("invalid root %q: %w", cfg.Root, err)
	}

	stampRoot, err := filesystem.ParsePath(cfg.StampRoot)
	if err != nil {
		return fmt.Errorf("invalid stamp root %q: %w", cfg.StampRoot, err)
	}

	if cfg.Mode == ModeStamps && stampRoot.IsRemote {
		return fmt.Errorf("stamp root must be a local path, got %s", cfg.StampRoot)
	}

	if cfg.Exclude != "" && !doublestar.ValidatePattern(cfg.Exclude) {
		return fmt.Errorf("invalid exclude pattern: %s", cfg.Exclude)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	return nil
}

// WalkRoot returns the root walked by the configured mode
func (cfg *Config) WalkRoot() string {
	if cfg.Mode == ModeStamps {
		return cfg.StampRoot
	}

	return cfg.Root
}

func defaultConfig() *Config {
	return &Config{
		Root:      DefaultRoot,
		Mode:      ModePaths,
		StampRoot: DefaultStampRoot,
		LogLevel:  DefaultLogLevel,
	}
}
