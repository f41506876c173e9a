package core

import (
	"time"
)

// TimeProvider abstracts clock and time zone lookups for the domain
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// LoadLocation resolves an IANA time zone name such as "Europe/Berlin".
	// An empty name resolves to UTC.
	LoadLocation(name string) (*time.Location, error)
}
