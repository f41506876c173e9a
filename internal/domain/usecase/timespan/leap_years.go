package timespan

import (
	"time"

	"github.com/rickb777/date/v2/gregorian"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// CollectLeapYears returns, in ascending order, the leap years whose February 29th
// (midnight in the earlier instant's location) falls within [lo, hi).
// The direction of the span does not matter.
func CollectLeapYears(start, target entity.Instant) []int {
	lo, hi := entity.NewSpan(start, target).Bounds()
	return leapYearsBetween(lo.Time(), hi.Time())
}

func leapYearsBetween(lo, hi time.Time) []int {
	loc := lo.Location()
	hi = hi.In(loc)

	years := []int{}
	for y := lo.Year(); y <= hi.Year(); y++ {
		if !gregorian.IsLeap(y) {
			continue
		}
		leapDay := time.Date(y, time.February, 29, 0, 0, 0, 0, loc)
		if !leapDay.Before(lo) && leapDay.Before(hi) {
			years = append(years, y)
		}
	}
	return years
}
