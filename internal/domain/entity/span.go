package entity

import (
	"math/big"
)

var bigNanosPerSecond = big.NewInt(1_000_000_000)

// Span is the ordered pair (start, target)
type Span struct {
	Start  Instant
	Target Instant
}

// NewSpan creates a span between two instants
func NewSpan(start, target Instant) Span {
	return Span{Start: start, Target: target}
}

// Sign is +1 when target is not before start, -1 otherwise
func (s Span) Sign() int {
	if s.Target.Before(s.Start) {
		return -1
	}
	return 1
}

// Bounds returns the earlier and the later instant
func (s Span) Bounds() (lo, hi Instant) {
	if s.Sign() < 0 {
		return s.Target, s.Start
	}
	return s.Start, s.Target
}

// IsZero reports whether both instants coincide
func (s Span) IsZero() bool {
	return s.Start.Equal(s.Target)
}

// AbsoluteNanoseconds returns |target - start| in nanoseconds.
// time.Time.Sub saturates after roughly 292 years, so the difference is built from
// Unix seconds and the nanosecond field instead.
func (s Span) AbsoluteNanoseconds() *big.Int {
	lo, hi := s.Bounds()

	seconds := big.NewInt(hi.t.Unix())
	seconds.Sub(seconds, big.NewInt(lo.t.Unix()))

	total := new(big.Int).Mul(seconds, bigNanosPerSecond)
	total.Add(total, big.NewInt(int64(hi.t.Nanosecond()-lo.t.Nanosecond())))
	return total
}
