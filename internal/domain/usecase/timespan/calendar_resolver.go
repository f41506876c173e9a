package timespan

import (
	"time"

	"github.com/rickb777/date/v2/gregorian"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// AddMonths moves t forward by n calendar months keeping the clock reading.
// When the day of month does not exist in the resulting month it is clamped to
// the last day of that month (Jan 31 + 1 month = Feb 28 or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	total := int(m) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)

	if last := gregorian.DaysIn(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// calendarCursor is the accumulator threaded through the month-based units.
// The position is always derived from the anchor so that clamping at the end of a
// short month never carries over into later steps.
type calendarCursor struct {
	anchor time.Time
	months int
}

func (c calendarCursor) at() time.Time {
	return AddMonths(c.anchor, c.months)
}

func (c calendarCursor) advance(n, step int) calendarCursor {
	return calendarCursor{anchor: c.anchor, months: c.months + n*step}
}

// fit returns the largest n >= 0 such that advancing by n steps of the given
// number of months does not pass hi.
func (c calendarCursor) fit(hi time.Time, step int) int {
	cy, cm, _ := c.at().Date()
	hy, hm, _ := hi.Date()

	n := ((hy-cy)*12 + int(hm) - int(cm)) / step
	if n < 0 {
		n = 0
	}
	for n > 0 && c.advance(n, step).at().After(hi) {
		n--
	}
	for !c.advance(n+1, step).at().After(hi) {
		n++
	}
	return n
}

// calendarResolution is the outcome of the month-based fold
type calendarResolution struct {
	amounts []int64
	months  int
	cursor  time.Time
}

// resolveCalendar folds the month-based units (millenniums to months) over a cursor
// starting at lo. Arithmetic happens in lo's location.
func resolveCalendar(lo, hi time.Time) calendarResolution {
	hi = hi.In(lo.Location())
	c := calendarCursor{anchor: lo}

	amounts := make([]int64, 0, 5)
	for _, u := range entity.Units() {
		if !u.MonthBased() {
			continue
		}
		n := c.fit(hi, u.Months)
		c = c.advance(n, u.Months)
		amounts = append(amounts, int64(n))
	}

	return calendarResolution{
		amounts: amounts,
		months:  c.months,
		cursor:  c.at(),
	}
}
