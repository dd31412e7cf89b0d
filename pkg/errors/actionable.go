// Package errors provides actionable error handling with context-aware suggestions.
//
// This package enriches the fatal errors of a run with a category and suggestions
// to help users resolve issues quickly. It detects the error kind (unreadable
// metadata, clock skew, permission, path, remote connection, etc.) from the error
// message and provides guidance for that kind.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	_, err := normalizer.Normalize("src/main.go")
//	if err != nil {
//	    actionableErr := enricher.Enrich(err, "src/main.go")
//	    fmt.Fprintln(os.Stderr, actionableErr.Error())
//	    fmt.Fprintln(os.Stderr, errors.FormatSuggestions(actionableErr))
//	}
//
// The enricher extracts paths from error messages when not explicitly provided:
//
//	err := errors.New("statx src/a.txt: permission denied")
//	enriched := enricher.Enrich(err, "") // Path will be extracted from error message
package errors

import "strings"

// Exported constants.
const (
	CategoryClock       ErrorCategory = "clock"
	CategoryConsistency ErrorCategory = "consistency"
	CategoryMetadata    ErrorCategory = "metadata"
	CategoryOrdering    ErrorCategory = "ordering"
	CategoryOutput      ErrorCategory = "output"
	CategoryPath        ErrorCategory = "path"
	CategoryPermission  ErrorCategory = "permission"
	CategoryRemote      ErrorCategory = "remote"
	CategoryUnknown     ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	original error,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		original:     original,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list.
// Returns empty string if the error is nil, not actionable, or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError) //nolint:errorlint // Only the outermost error carries suggestions
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
// It keeps the original error so errors.Is and errors.As still see through it.
type actionableError struct {
	original     error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.original.Error()
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.original.Error()
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the enriched error.
func (e *actionableError) Unwrap() error {
	return e.original
}
