package timespan

import (
	"math/big"
	"time"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// TimeSpan decomposes the elapsed time between two instants into the unit hierarchy.
// The computation is pure; a TimeSpan never changes after New returns.
type TimeSpan struct {
	span   entity.Span
	result *entity.TimeSpanResult
}

// New computes the time span from start to target
func New(start, target entity.Instant) *TimeSpan {
	span := entity.NewSpan(start, target)
	return &TimeSpan{
		span:   span,
		result: decompose(span),
	}
}

// Compute is a shorthand for New(start, target).Duration()
func Compute(start, target entity.Instant) *entity.TimeSpanResult {
	return New(start, target).Duration()
}

// decompose runs the resolvers largest unit first and merges their output
func decompose(span entity.Span) *entity.TimeSpanResult {
	total := span.AbsoluteNanoseconds()
	if total.Sign() == 0 {
		return entity.NewTimeSpanResult(1, nil, total, nil)
	}

	lo, hi := span.Bounds()
	loT, hiT := lo.Time(), hi.Time()

	cal := resolveCalendar(loT, hiT)

	// at most one month of elapsed time is left, well inside int64
	remainder := int64(hiT.Sub(cal.cursor))
	dayAmounts, subDay := resolveDays(remainder)

	magnitudes := make([]int64, 0, entity.UnitCount)
	magnitudes = append(magnitudes, cal.amounts...)
	magnitudes = append(magnitudes, dayAmounts...)
	magnitudes = append(magnitudes, resolveFixed(subDay)...)

	return entity.NewTimeSpanResult(span.Sign(), magnitudes, total, leapYearsBetween(loT, hiT))
}

// Duration returns the full decomposition
func (ts *TimeSpan) Duration() *entity.TimeSpanResult {
	return ts.result
}

// Span returns the pair of instants the time span was computed for
func (ts *TimeSpan) Span() entity.Span {
	return ts.span
}

// Sign returns +1 for forward spans and -1 when target is before start
func (ts *TimeSpan) Sign() int {
	return ts.result.Sign()
}

// Amount returns the signed amount of one unit
func (ts *TimeSpan) Amount(name entity.UnitName) int64 {
	return ts.result.Amount(name)
}

// LeapYears returns the leap years whose leap day lies within the span
func (ts *TimeSpan) LeapYears() []int {
	return ts.result.LeapYears()
}

// LeapCount returns the number of leap years, never negative
func (ts *TimeSpan) LeapCount() int {
	return ts.result.LeapCount()
}

// TotalNanoseconds returns the absolute elapsed time in nanoseconds
func (ts *TimeSpan) TotalNanoseconds() *big.Int {
	return ts.result.TotalNanoseconds()
}

// Advance applies the magnitudes of r to from: month-based units as one calendar
// advance, then weeks, days and the fixed units as elapsed time. Starting from the
// earlier instant of a span it lands exactly on the later one.
func Advance(from time.Time, r *entity.TimeSpanResult) time.Time {
	months := 0
	var elapsed int64
	for _, u := range entity.Units() {
		amount := r.Amount(u.Name)
		if amount < 0 {
			amount = -amount
		}
		switch {
		case u.MonthBased():
			months += int(amount) * u.Months
		case u.DayBased():
			elapsed += amount * int64(u.Days) * entity.NanosPerDay
		default:
			elapsed += amount * u.Multiplier
		}
	}
	return AddMonths(from, months).Add(time.Duration(elapsed))
}

// CalendarContribution returns the nanoseconds covered by the month-based units of r
// when applied from the earlier instant lo
func CalendarContribution(lo time.Time, r *entity.TimeSpanResult) *big.Int {
	months := 0
	for _, u := range entity.Units() {
		if !u.MonthBased() {
			continue
		}
		amount := r.Amount(u.Name)
		if amount < 0 {
			amount = -amount
		}
		months += int(amount) * u.Months
	}

	from := entity.MustInstant(lo)
	to := entity.MustInstant(AddMonths(lo, months))
	return entity.NewSpan(from, to).AbsoluteNanoseconds()
}
