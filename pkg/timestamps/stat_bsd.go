//go:build darwin || freebsd

package timestamps

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// readPlatformTimes reads the birth, modification and change times from lstat(2).
// A zero or negative birth time means the filesystem does not record it.
func readPlatformTimes(path string) (Metadata, error) {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return Metadata{}, fmt.Errorf("lstat %s: %w", path, err)
	}

	md := Metadata{
		Modified:      timespecInstant(st.Mtim),
		StatusChanged: timespecInstant(st.Ctim),
	}

	if st.Btim.Sec > 0 || (st.Btim.Sec == 0 && st.Btim.Nsec > 0) {
		md.Created = timespecInstant(st.Btim)
		md.HasCreated = true
	}

	return md, nil
}

func timespecInstant(ts unix.Timespec) Instant {
	sec, nsec := ts.Unix()
	return NewInstant(sec, nsec)
}
