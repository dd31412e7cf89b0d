package timestamps

import "errors"

// Exported variables.
var (
	// ErrMetadataUnavailable means the platform or filesystem does not record a
	// required time field (usually the creation time).
	ErrMetadataUnavailable = errors.New("metadata unavailable")

	// ErrCivilMismatch means the portable and platform modification times do
	// not render to the same civil time.
	ErrCivilMismatch = errors.New("civil time mismatch between portable and platform metadata")

	// ErrOrderingViolation means the file claims to be modified before (or at
	// the instant) it was created.
	ErrOrderingViolation = errors.New("modified before created")

	// ErrClockSkew means a recorded instant lies in the future of the clock.
	ErrClockSkew = errors.New("clock skew: instant is in the future")
)
