package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits_Hierarchy(t *testing.T) {
	units := Units()
	require.Len(t, units, UnitCount)

	expected := []UnitName{
		Millenniums, Centuries, Decades, Years, Months, Weeks, Days,
		Hours, Minutes, Seconds, Millis, Micros, Nanos,
	}
	assert.Equal(t, expected, UnitNames())

	for i, u := range units {
		assert.Equal(t, UnitCount-1-i, u.Position, u.Name)
	}

	t.Run("Units returns a copy", func(t *testing.T) {
		units[0].Name = "eons"
		assert.Equal(t, Millenniums, Units()[0].Name)
	})
}

func TestUnits_Kinds(t *testing.T) {
	testCases := []struct {
		name       UnitName
		kind       UnitKind
		monthBased bool
		dayBased   bool
	}{
		{Millenniums, KindCalendar, true, false},
		{Years, KindCalendar, true, false},
		{Months, KindCalendar, true, false},
		{Weeks, KindCalendar, false, true},
		{Days, KindCalendar, false, true},
		{Hours, KindFixed, false, false},
		{Nanos, KindFixed, false, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.name), func(t *testing.T) {
			u, ok := LookupUnit(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.kind, u.Kind)
			assert.Equal(t, tc.monthBased, u.MonthBased())
			assert.Equal(t, tc.dayBased, u.DayBased())
		})
	}

	assert.Equal(t, "calendar", KindCalendar.String())
	assert.Equal(t, "fixed", KindFixed.String())
}

func TestUnits_Multipliers(t *testing.T) {
	expected := map[UnitName]time.Duration{
		Hours:   time.Hour,
		Minutes: time.Minute,
		Seconds: time.Second,
		Millis:  time.Millisecond,
		Micros:  time.Microsecond,
		Nanos:   time.Nanosecond,
	}
	for name, d := range expected {
		u, ok := LookupUnit(name)
		require.True(t, ok)
		assert.Equal(t, int64(d), u.Multiplier, name)
	}

	months := map[UnitName]int{Millenniums: 12000, Centuries: 1200, Decades: 120, Years: 12, Months: 1}
	for name, m := range months {
		u, _ := LookupUnit(name)
		assert.Equal(t, m, u.Months, name)
	}

	assert.Equal(t, int64(24*time.Hour), NanosPerDay)
}

func TestLookupUnit(t *testing.T) {
	_, ok := LookupUnit("fortnights")
	assert.False(t, ok)
	assert.True(t, IsValidUnitName("decades"))
	assert.False(t, IsValidUnitName("Decades"))
	assert.False(t, IsValidUnitName(""))
}
