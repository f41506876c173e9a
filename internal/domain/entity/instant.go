package entity

import (
	"errors"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/timespan/internal/domain/error"
)

// Instant is an absolute point in time with nanosecond resolution.
// The location is kept so calendar arithmetic can follow the caller's wall clock.
type Instant struct {
	t time.Time
}

// layoutsWithZone carry their own UTC offset
var layoutsWithZone = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700",
}

// localLayouts are read in the caller-supplied location
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NewInstant wraps t. The zero time.Time is rejected as uninitialised.
func NewInstant(t time.Time) (Instant, error) {
	if t.IsZero() {
		return Instant{}, errs.NewInstantError("", "0001-01-01T00:00:00Z", errors.New("uninitialised time value"))
	}
	return Instant{t: t}, nil
}

// MustInstant is like NewInstant but panics on error
func MustInstant(t time.Time) Instant {
	i, err := NewInstant(t)
	if err != nil {
		panic(err)
	}
	return i
}

// ParseInstant parses value as an instant. Values without a UTC offset are read in loc;
// a nil loc means UTC.
func ParseInstant(value string, loc *time.Location) (Instant, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Instant{}, errs.NewInstantError("", value, errors.New("empty value"))
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range layoutsWithZone {
		if t, err := time.Parse(layout, value); err == nil {
			return NewInstant(t)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return NewInstant(t)
		}
	}

	return Instant{}, errs.NewInstantError("", value, errors.New("unrecognised time format"))
}

// Time returns the wrapped time value
func (i Instant) Time() time.Time {
	return i.t
}

// Location returns the location the instant was expressed in
func (i Instant) Location() *time.Location {
	return i.t.Location()
}

// In returns the same instant expressed in loc
func (i Instant) In(loc *time.Location) Instant {
	return Instant{t: i.t.In(loc)}
}

// Before reports whether i is strictly earlier than other
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// Equal reports whether both instants denote the same absolute time
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

// Compare returns -1, 0 or +1
func (i Instant) Compare(other Instant) int {
	return i.t.Compare(other.t)
}

// Year returns the calendar year in the instant's location
func (i Instant) Year() int {
	return i.t.Year()
}

// String formats the instant as RFC 3339 with nanoseconds
func (i Instant) String() string {
	return i.t.Format(time.RFC3339Nano)
}
