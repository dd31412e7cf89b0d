package walkengine

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/dirstamp/pkg/filesystem"
)

// FileFilter decides which entries are dropped from a walk.
type FileFilter interface {
	// ShouldExclude returns true if the entry at the given relative path should be dropped
	ShouldExclude(relativePath string) bool
}

// GlobFilter implements FileFilter using a doublestar glob pattern
type GlobFilter struct {
	pattern string
}

// NewGlobFilter creates a new GlobFilter with the given pattern.
// An empty pattern excludes nothing.
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{pattern: pattern}
}

// ShouldExclude reports whether the slash-separated relative path matches the pattern.
// Matching is case-sensitive, like the filesystems being walked.
func (f *GlobFilter) ShouldExclude(relativePath string) bool {
	if f.pattern == "" {
		return false
	}

	matched, err := doublestar.Match(f.pattern, filepath.ToSlash(relativePath))
	if err != nil {
		// Invalid patterns are rejected by config validation; never match here
		return false
	}

	return matched
}

// ExcludeScanner drops entries matched by a FileFilter.
// When an excluded entry is a directory and the source can prune, the whole
// subtree is skipped without being read.
type ExcludeScanner struct {
	source    filesystem.Scanner
	filter    FileFilter
	OnExclude func(entry filesystem.Entry)
}

// NewExcludeScanner wraps source with the given filter.
func NewExcludeScanner(source filesystem.Scanner, filter FileFilter) *ExcludeScanner {
	return &ExcludeScanner{source: source, filter: filter}
}

// Next returns the next entry not matched by the filter.
// The walk root is never excluded.
func (s *ExcludeScanner) Next() (filesystem.Entry, bool) {
	for {
		entry, ok := s.source.Next()
		if !ok {
			return filesystem.Entry{}, false
		}

		if entry.RelativePath == "." || !s.filter.ShouldExclude(entry.RelativePath) {
			return entry, true
		}

		if entry.IsDir {
			if skipper, canSkip := s.source.(filesystem.DirSkipper); canSkip {
				skipper.SkipDir()
			}
		}

		if s.OnExclude != nil {
			s.OnExclude(entry)
		}
	}
}

// Err returns the source's error.
func (s *ExcludeScanner) Err() error {
	return s.source.Err()
}

// SelectScanner keeps only the entries for which keep returns true.
type SelectScanner struct {
	source filesystem.Scanner
	keep   func(filesystem.Entry) bool
}

// FilesOnly drops directory entries.
func FilesOnly(source filesystem.Scanner) *SelectScanner {
	return &SelectScanner{source: source, keep: func(e filesystem.Entry) bool { return !e.IsDir }}
}

// RegularFilesOnly keeps regular files, dropping directories, symlinks and
// special files.
func RegularFilesOnly(source filesystem.Scanner) *SelectScanner {
	return &SelectScanner{source: source, keep: filesystem.Entry.IsRegular}
}

// Next returns the next entry accepted by the selector.
func (s *SelectScanner) Next() (filesystem.Entry, bool) {
	for {
		entry, ok := s.source.Next()
		if !ok {
			return filesystem.Entry{}, false
		}

		if s.keep(entry) {
			return entry, true
		}
	}
}

// Err returns the source's error.
func (s *SelectScanner) Err() error {
	return s.source.Err()
}
