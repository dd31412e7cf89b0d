package filesystem

import (
	"fmt"
)

// Open creates a scanner for the given target.
// Returns (scanner, closer, error).
// - scanner: lazily walks the local tree, or the remote tree for sftp:// targets
// - closer: a function to call when done (closes SFTP connections); never nil
func Open(target string) (*WalkScanner, func(), error) {
	parsed, err := ParsePath(target)
	if err != nil {
		return nil, nil, err
	}

	if !parsed.IsRemote {
		return Local(parsed.LocalPath), func() {}, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return conn.Scan(parsed.Path), closer, nil
}
