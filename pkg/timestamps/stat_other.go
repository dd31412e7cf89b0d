//go:build !linux && !darwin && !freebsd

package timestamps

import "fmt"

func readPlatformTimes(path string) (Metadata, error) {
	return Metadata{}, fmt.Errorf("%s: platform times: %w", path, ErrMetadataUnavailable)
}
