package timestamps

import (
	"fmt"
	"os"
	"time"
)

// Metadata is the raw time information read for one file.
type Metadata struct {
	// PortableModified is the modification time from os.Lstat.
	PortableModified time.Time

	// Created is only meaningful when HasCreated is set.
	Created    Instant
	HasCreated bool

	// Modified and StatusChanged come from the platform stat call.
	Modified      Instant
	StatusChanged Instant
}

// MetadataReader reads the time metadata of the file at path.
type MetadataReader func(path string) (Metadata, error)

// ReadMetadata combines the portable metadata of path with the platform-specific
// creation, modification and status-change times. Symlinks are not followed.
func ReadMetadata(path string) (Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	md, err := readPlatformTimes(path)
	if err != nil {
		return Metadata{}, err
	}

	md.PortableModified = info.ModTime()

	return md, nil
}
