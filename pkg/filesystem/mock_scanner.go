package filesystem

import "os"

// MockScanner implements Scanner over a fixed list of entries.
// It yields the entries in order, then reports the configured error (if any).
type MockScanner struct {
	entries []Entry
	index   int
	err     error
	skipped []string
}

// NewMockScanner creates a scanner that yields entries in the given order.
func NewMockScanner(entries ...Entry) *MockScanner {
	return &MockScanner{
		entries: entries,
		index:   -1,
	}
}

// Err returns the terminal error once every entry has been yielded.
func (s *MockScanner) Err() error {
	if s.index < len(s.entries) {
		return nil
	}

	return s.err
}

// FailWith makes the scanner report err after its last entry.
func (s *MockScanner) FailWith(err error) *MockScanner {
	s.err = err
	return s
}

// Next advances to the next entry and returns it.
func (s *MockScanner) Next() (Entry, bool) {
	if s.index < len(s.entries) {
		s.index++
	}

	if s.index >= len(s.entries) {
		return Entry{}, false
	}

	return s.entries[s.index], true
}

// SkipDir prunes every later entry below the directory most recently returned.
func (s *MockScanner) SkipDir() {
	if s.index < 0 || s.index >= len(s.entries) || !s.entries[s.index].IsDir {
		return
	}

	dir := s.entries[s.index].Path
	s.skipped = append(s.skipped, dir)

	kept := append([]Entry(nil), s.entries[:s.index+1]...)
	for _, entry := range s.entries[s.index+1:] {
		if !isBelow(dir, entry.Path) {
			kept = append(kept, entry)
		}
	}

	s.entries = kept
}

// SkippedDirs returns the directories pruned through SkipDir.
func (s *MockScanner) SkippedDirs() []string {
	return s.skipped
}

func isBelow(dir, path string) bool {
	return len(path) > len(dir) && path[:len(dir)] == dir && (path[len(dir)] == '/' || path[len(dir)] == '\\')
}

// File is a convenience constructor for a non-directory entry.
func File(path string) Entry {
	return Entry{Path: path, RelativePath: path, Mode: 0o644}
}

// Dir is a convenience constructor for a directory entry.
func Dir(path string) Entry {
	return Entry{Path: path, RelativePath: path, IsDir: true, Mode: os.ModeDir | 0o755}
}

// Symlink is a convenience constructor for an unfollowed symbolic link entry.
func Symlink(path string) Entry {
	return Entry{Path: path, RelativePath: path, Mode: os.ModeSymlink | 0o777}
}
