package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances
	pathExtractionPatterns = []*regexp.Regexp{
		// "<op> <path>: <reason>" as produced by os and x/sys wrappers
		regexp.MustCompile(`\b\w+\s+([./~]?[^\s:]*[/.][^\s:]*):`),
		// "<path>: <reason>" as produced by the timestamp normalizer
		regexp.MustCompile(`^([./~]?[^\s:]*[/.][^\s:]*):\s`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich takes an error and enriches it with category and actionable suggestions.
// If the error is nil it returns nil. If it already wraps an ActionableError, that
// error is returned unchanged. If affectedPath is empty, a path is extracted from
// the error message when possible.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	category := e.matcher.Match(errMsg)

	return NewActionableError(
		err,
		category,
		e.generator.Generate(category, affectedPath),
		affectedPath,
	)
}

// extractPath attempts to extract a file path from common error message formats.
// Returns empty string if no path is found.
//
// Recognized shapes:
//   - "statx src/a.txt: no such file or directory"
//   - "failed to stat /var/log/app.log: permission denied"
//   - "src/a.txt: creation time: metadata unavailable"
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
