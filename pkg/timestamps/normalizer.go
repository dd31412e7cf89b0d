package timestamps

import (
	"fmt"
	"time"
)

// Clock provides the current time for elapsed computations.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using time.Now.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock replaces the clock used for elapsed times.
func WithClock(clock Clock) Option {
	return func(n *Normalizer) {
		n.clock = clock
	}
}

// WithLocation sets the zone civil times are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		n.location = loc
	}
}

// WithMetadataReader replaces the function that reads file metadata.
func WithMetadataReader(read MetadataReader) Option {
	return func(n *Normalizer) {
		n.read = read
	}
}

// Normalizer turns the metadata of a file into a checked Triple.
type Normalizer struct {
	location *time.Location
	clock    Clock
	read     MetadataReader
}

// NewNormalizer creates a Normalizer rendering civil times in time.Local,
// reading metadata from the local filesystem and using the real clock.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		location: time.Local,
		clock:    RealClock{},
		read:     ReadMetadata,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Location returns the zone civil times are rendered in.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Normalize reads the times of the file at path and checks them.
//
// It fails when the creation time is not recorded, when the portable and
// platform modification times disagree in civil form, when the file was not
// created strictly before it was modified, or when creation or modification
// lies in the clock's future.
func (n *Normalizer) Normalize(path string) (Triple, error) {
	md, err := n.read(path)
	if err != nil {
		return Triple{}, err
	}

	if !md.HasCreated {
		return Triple{}, fmt.Errorf("%s: creation time: %w", path, ErrMetadataUnavailable)
	}

	triple := Triple{
		Created:       NewStamp(md.Created, n.location),
		Modified:      NewStamp(FromTime(md.PortableModified), n.location),
		StatusChanged: NewStamp(md.StatusChanged, n.location),
	}

	platformModified := NewStamp(md.Modified, n.location)
	if triple.Modified.ISO() != platformModified.ISO() {
		return Triple{}, fmt.Errorf("%s: %s != %s: %w",
			path, triple.Modified.ISO(), platformModified.ISO(), ErrCivilMismatch)
	}

	if !triple.Created.Native.Before(triple.Modified.Native) {
		return Triple{}, fmt.Errorf("%s: created %s, modified %s: %w",
			path, triple.Created.ISO(), triple.Modified.ISO(), ErrOrderingViolation)
	}

	now := n.clock.Now()

	for _, stamp := range []*Stamp{&triple.Created, &triple.Modified} {
		elapsed := now.Sub(stamp.Native.Time())
		if elapsed < 0 {
			return Triple{}, fmt.Errorf("%s: %s is %s ahead of the clock: %w",
				path, stamp.ISO(), -elapsed, ErrClockSkew)
		}

		stamp.Elapsed = elapsed
	}

	return triple, nil
}
