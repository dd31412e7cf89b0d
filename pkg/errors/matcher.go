package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// categoryPatterns pairs a category with the substrings that identify it.
type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order; the first one with a matching pattern wins,
// so the specific timestamp failures are checked before generic OS errors.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategoryMetadata, []string{"metadata unavailable"}},
			{CategoryConsistency, []string{"civil time mismatch"}},
			{CategoryOrdering, []string{"modified before created"}},
			{CategoryClock, []string{"clock skew"}},
			{CategoryRemote, []string{
				"ssh connection",
				"ssh authentication",
				"sftp session",
				"failed to connect",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"operation not permitted",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"not a directory",
				"file not found",
			}},
			{CategoryOutput, []string{
				"broken pipe",
				"short write",
				"input/output error",
				"i/o error",
			}},
		},
	}
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.category
			}
		}
	}

	return CategoryUnknown
}
