package filesystem

import (
	"path/filepath"

	"github.com/kr/fs"
)

// WalkScanner implements Scanner on top of a kr/fs Walker.
//
// Entries the walker could not read (failed Lstat, failed ReadDir, missing root)
// are dropped and counted; they never end the scan, so Err always returns nil.
type WalkScanner struct {
	walker  *fs.Walker
	root    string
	rel     func(root, target string) (string, error)
	skipped int

	// OnSkip, when set, is called for every unreadable entry that was dropped.
	OnSkip func(path string, err error)
}

// NewWalkScanner creates a scanner over an existing walker rooted at root.
// Relative paths are computed with filepath.Rel.
func NewWalkScanner(walker *fs.Walker, root string) *WalkScanner {
	return &WalkScanner{
		walker: walker,
		root:   root,
		rel:    filepath.Rel,
	}
}

// Local creates a scanner over the local directory tree at root.
// Nothing is read until the first call to Next.
func Local(root string) *WalkScanner {
	return NewWalkScanner(fs.Walk(root), root)
}

// Err returns nil: unreadable entries are skipped, not reported.
func (s *WalkScanner) Err() error {
	return nil
}

// Next advances to the next readable entry and returns it.
func (s *WalkScanner) Next() (Entry, bool) {
	for s.walker.Step() {
		path := s.walker.Path()

		if err := s.walker.Err(); err != nil { //nolint:noinlineerr // Inline error check is idiomatic for walker error handling
			s.skip(path, err)
			continue
		}

		relPath, err := s.rel(s.root, path)
		if err != nil {
			s.skip(path, err)
			continue
		}

		info := s.walker.Stat()

		return Entry{
			Path:         path,
			RelativePath: relPath,
			IsDir:        info.IsDir(),
			Mode:         info.Mode(),
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		}, true
	}

	return Entry{}, false
}

// SkipDir prunes the directory most recently returned by Next.
// It has no effect if that entry was not a directory.
func (s *WalkScanner) SkipDir() {
	s.walker.SkipDir()
}

// Skipped returns how many unreadable entries have been dropped so far.
func (s *WalkScanner) Skipped() int {
	return s.skipped
}

func (s *WalkScanner) skip(path string, err error) {
	s.skipped++
	if s.OnSkip != nil {
		s.OnSkip(path, err)
	}
}
