package timespan

import (
	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// resolveDays splits the elapsed time left after months into weeks and days.
// It returns the amounts and the sub-day remainder.
func resolveDays(remainder int64) ([]int64, int64) {
	amounts := make([]int64, 0, 2)
	for _, u := range entity.Units() {
		if !u.DayBased() {
			continue
		}
		step := int64(u.Days) * entity.NanosPerDay
		amounts = append(amounts, remainder/step)
		remainder %= step
	}
	return amounts, remainder
}

// resolveFixed decomposes a sub-day remainder into hours down to nanoseconds
// using constant multipliers.
func resolveFixed(remainder int64) []int64 {
	amounts := make([]int64, 0, 6)
	for _, u := range entity.Units() {
		if u.Kind != entity.KindFixed {
			continue
		}
		amounts = append(amounts, remainder/u.Multiplier)
		remainder %= u.Multiplier
	}
	return amounts
}
