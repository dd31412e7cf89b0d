//go:build linux

package timestamps

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const statxTimes = unix.STATX_BTIME | unix.STATX_MTIME | unix.STATX_CTIME

// readPlatformTimes uses statx(2), the only Linux call that reports birth time.
// Filesystems without birth time leave STATX_BTIME out of the returned mask.
func readPlatformTimes(path string) (Metadata, error) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, statxTimes, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return Metadata{}, fmt.Errorf("statx %s: %w", path, ErrMetadataUnavailable)
	}
	if err != nil {
		return Metadata{}, fmt.Errorf("statx %s: %w", path, err)
	}

	md := Metadata{
		Modified:      statxInstant(stx.Mtime),
		StatusChanged: statxInstant(stx.Ctime),
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		md.Created = statxInstant(stx.Btime)
		md.HasCreated = true
	}

	return md, nil
}

func statxInstant(ts unix.StatxTimestamp) Instant {
	return NewInstant(ts.Sec, int64(ts.Nsec))
}
