package filesystem

import (
	"os"
	"time"
)

// Scanner is an iterator over the entries of a directory tree.
// It provides a simple Next pattern for traversing directory contents.
type Scanner interface {
	// Next advances to the next entry and returns it.
	// Returns (Entry{}, false) when done or on error.
	// Check Err() after Next() returns false to distinguish between end-of-scan and error.
	Next() (Entry, bool)

	// Err returns any error that stopped the scan.
	// Should be checked after Next() returns false.
	Err() error
}

// DirSkipper is implemented by scanners that can prune the directory
// most recently returned by Next.
type DirSkipper interface {
	SkipDir()
}

// Entry describes one step of a traversal.
// This is our own type (not os.FileInfo) so filters and tests can build it directly.
type Entry struct {
	// Path is the walk root joined with the entry's relative path, in display form
	Path string

	// RelativePath is the path relative to the walk root ("." for the root itself)
	RelativePath string

	// IsDir indicates if this is a directory
	IsDir bool

	// Mode carries the type bits (directory, symlink, device...) and permissions
	Mode os.FileMode

	// Size is the size in bytes as reported by the walker
	Size int64

	// ModTime is the modification time as reported by the walker
	ModTime time.Time
}

// IsRegular reports whether the entry is a regular file (not a directory,
// symlink, device, pipe or socket).
func (e Entry) IsRegular() bool {
	return e.Mode.IsRegular()
}
