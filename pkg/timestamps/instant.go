// Package timestamps extracts and normalizes the creation, modification and
// status-change times of a file.
//
// Every time value is kept in two forms: the native Instant (seconds and
// nanoseconds since the Unix epoch, no zone) and a civil time.Time derived from
// it in a fixed location. The civil form is a pure function of the native form
// and the location, so deriving it again always gives the same value.
package timestamps

import (
	"fmt"
	"time"
)

// nanosPerSecond bounds the Nsec field of a normalized Instant.
const nanosPerSecond = int64(time.Second)

// Instant is a native timestamp: whole seconds since the Unix epoch plus a
// nanosecond remainder in [0, 1e9).
type Instant struct {
	Sec  int64
	Nsec int64
}

// NewInstant builds a normalized Instant, carrying excess or negative nanoseconds
// into the seconds field.
func NewInstant(sec, nsec int64) Instant {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond

	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}

	return Instant{Sec: sec, Nsec: nsec}
}

// FromTime returns the Instant a time.Time refers to. The zone is discarded.
func FromTime(t time.Time) Instant {
	return Instant{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool {
	if i.Sec != other.Sec {
		return i.Sec < other.Sec
	}

	return i.Nsec < other.Nsec
}

// Civil converts the instant to wall-clock time in loc.
func (i Instant) Civil(loc *time.Location) time.Time {
	return time.Unix(i.Sec, i.Nsec).In(loc)
}

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(i.Sec, i.Nsec).UTC()
}

// Unix renders the instant as "<seconds>,<nanoseconds>".
func (i Instant) Unix() string {
	return fmt.Sprintf("%d,%d", i.Sec, i.Nsec)
}

// Stamp is one time value of a file in both its native and civil forms.
type Stamp struct {
	Native Instant
	Civil  time.Time

	// Elapsed is the time between the instant and the normalizer's clock reading.
	// It is only computed for the creation and modification stamps.
	Elapsed time.Duration
}

// NewStamp derives the civil form of native in loc.
func NewStamp(native Instant, loc *time.Location) Stamp {
	return Stamp{
		Native: native,
		Civil:  native.Civil(loc),
	}
}

// ISO renders the civil form as RFC 3339 with nanoseconds and the zone offset.
func (s Stamp) ISO() string {
	return s.Civil.Format(time.RFC3339Nano)
}

// Triple holds the three time values of one file.
type Triple struct {
	Created       Stamp
	Modified      Stamp
	StatusChanged Stamp
}
