package entity

import (
	"math"
	"math/big"
	"slices"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/period"

	errs "github.com/amirhossein-jamali/timespan/internal/domain/error"
)

// UnitAmount pairs a unit with its signed amount
type UnitAmount struct {
	Unit   UnitName `json:"unit"`
	Amount int64    `json:"amount"`
}

// TimeSpanResult is the decomposition of a span into the unit hierarchy.
// Every amount carries the span's sign; DurationInNanoseconds and LeapYears do not.
type TimeSpanResult struct {
	sign      int
	amounts   [UnitCount]int64
	duration  *big.Int
	leapYears []int
}

// NewTimeSpanResult assembles a result from unsigned per-unit magnitudes ordered
// largest to smallest. A zero sign is treated as forward.
func NewTimeSpanResult(sign int, magnitudes []int64, nanoseconds *big.Int, leapYears []int) *TimeSpanResult {
	if sign >= 0 {
		sign = 1
	} else {
		sign = -1
	}

	r := &TimeSpanResult{
		sign:      sign,
		duration:  new(big.Int),
		leapYears: []int{},
	}
	for i := 0; i < UnitCount && i < len(magnitudes); i++ {
		r.amounts[i] = int64(sign) * magnitudes[i]
	}
	if nanoseconds != nil {
		r.duration.Abs(nanoseconds)
	}
	if len(leapYears) > 0 {
		r.leapYears = slices.Clone(leapYears)
		slices.Sort(r.leapYears)
		r.leapYears = slices.Compact(r.leapYears)
	}
	return r
}

// Sign returns +1 for forward spans and -1 for backward spans
func (r *TimeSpanResult) Sign() int {
	return r.sign
}

// Amount returns the signed amount for one unit
func (r *TimeSpanResult) Amount(name UnitName) int64 {
	u, ok := LookupUnit(name)
	if !ok {
		return 0
	}
	return r.amounts[u.index()]
}

// Entries returns every unit with its amount in hierarchy order
func (r *TimeSpanResult) Entries() []UnitAmount {
	entries := make([]UnitAmount, UnitCount)
	for i, u := range hierarchy {
		entries[i] = UnitAmount{Unit: u.Name, Amount: r.amounts[i]}
	}
	return entries
}

// Map returns the amounts keyed by unit name
func (r *TimeSpanResult) Map() map[UnitName]int64 {
	m := make(map[UnitName]int64, UnitCount)
	for i, u := range hierarchy {
		m[u.Name] = r.amounts[i]
	}
	return m
}

// IsZero reports whether every amount is zero
func (r *TimeSpanResult) IsZero() bool {
	return r.duration.Sign() == 0
}

// TotalNanoseconds returns the absolute elapsed time in nanoseconds
func (r *TimeSpanResult) TotalNanoseconds() *big.Int {
	return new(big.Int).Set(r.duration)
}

// TotalDuration returns the signed elapsed time as a time.Duration.
// Spans longer than about 292 years do not fit.
func (r *TimeSpanResult) TotalDuration() (time.Duration, error) {
	if !r.duration.IsInt64() {
		return 0, errs.NewOverflowError("duration", r.duration.String()+"ns", big.NewInt(math.MaxInt64).String()+"ns")
	}
	return time.Duration(int64(r.sign) * r.duration.Int64()), nil
}

// LeapYears returns the leap years whose leap day lies within the span
func (r *TimeSpanResult) LeapYears() []int {
	return slices.Clone(r.leapYears)
}

// LeapCount returns the number of leap years; never negative
func (r *TimeSpanResult) LeapCount() int {
	return len(r.leapYears)
}

func (r *TimeSpanResult) Millenniums() int64 { return r.Amount(Millenniums) }
func (r *TimeSpanResult) Centuries() int64   { return r.Amount(Centuries) }
func (r *TimeSpanResult) Decades() int64     { return r.Amount(Decades) }
func (r *TimeSpanResult) Years() int64       { return r.Amount(Years) }
func (r *TimeSpanResult) Months() int64      { return r.Amount(Months) }
func (r *TimeSpanResult) Weeks() int64       { return r.Amount(Weeks) }
func (r *TimeSpanResult) Days() int64        { return r.Amount(Days) }
func (r *TimeSpanResult) Hours() int64       { return r.Amount(Hours) }
func (r *TimeSpanResult) Minutes() int64     { return r.Amount(Minutes) }
func (r *TimeSpanResult) Seconds() int64     { return r.Amount(Seconds) }
func (r *TimeSpanResult) Millis() int64      { return r.Amount(Millis) }
func (r *TimeSpanResult) Micros() int64      { return r.Amount(Micros) }
func (r *TimeSpanResult) Nanos() int64       { return r.Amount(Nanos) }

// Period converts the result to an ISO-8601 period. Millenniums, centuries and
// decades fold into years; sub-second units become the seconds fraction.
func (r *TimeSpanResult) Period() period.Period {
	abs := func(name UnitName) int64 {
		v := r.Amount(name)
		if v < 0 {
			return -v
		}
		return v
	}

	years := abs(Millenniums)*1000 + abs(Centuries)*100 + abs(Decades)*10 + abs(Years)
	subSecond := abs(Millis)*int64(time.Millisecond) + abs(Micros)*int64(time.Microsecond) + abs(Nanos)
	seconds := decimal.MustNew(abs(Seconds)*int64(time.Second)+subSecond, 9).Trim(0)

	p, err := period.NewDecimal(
		decimal.MustNew(years, 0),
		decimal.MustNew(abs(Months), 0),
		decimal.MustNew(abs(Weeks), 0),
		decimal.MustNew(abs(Days), 0),
		decimal.MustNew(abs(Hours), 0),
		decimal.MustNew(abs(Minutes), 0),
		seconds,
	)
	if err != nil {
		// only the seconds field carries a fraction, so this is unreachable in practice
		p = period.New(int(years), int(abs(Months)), int(abs(Weeks)), int(abs(Days)),
			int(abs(Hours)), int(abs(Minutes)), int(abs(Seconds)))
	}

	if r.sign < 0 {
		return p.Negate()
	}
	return p
}

// ISO8601 returns the period in ISO-8601 notation, e.g. "P1Y2M3DT4H5M6.5S"
func (r *TimeSpanResult) ISO8601() string {
	return r.Period().String()
}
