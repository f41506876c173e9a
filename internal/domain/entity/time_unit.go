package entity

import "time"

// UnitName identifies a position in the time unit hierarchy
type UnitName string

// Unit names, largest to smallest
const (
	Millenniums UnitName = "millenniums"
	Centuries   UnitName = "centuries"
	Decades     UnitName = "decades"
	Years       UnitName = "years"
	Months      UnitName = "months"
	Weeks       UnitName = "weeks"
	Days        UnitName = "days"
	Hours       UnitName = "hours"
	Minutes     UnitName = "minutes"
	Seconds     UnitName = "seconds"
	Millis      UnitName = "millis"
	Micros      UnitName = "micros"
	Nanos       UnitName = "nanos"
)

// UnitKind tags how a unit is resolved
type UnitKind int

const (
	// KindCalendar units have no fixed length and are resolved against the calendar
	KindCalendar UnitKind = iota
	// KindFixed units have a constant nanosecond multiplier
	KindFixed
)

// String returns the kind name
func (k UnitKind) String() string {
	if k == KindFixed {
		return "fixed"
	}
	return "calendar"
}

// TimeUnit describes one position of the hierarchy.
//
// Calendar units advance either by whole months (Months > 0) or by whole days
// (Days > 0). Fixed units only carry Multiplier.
type TimeUnit struct {
	Name       UnitName
	Position   int
	Kind       UnitKind
	Months     int
	Days       int
	Multiplier int64
}

// NanosPerDay is the length of a day used once months are exhausted
const NanosPerDay = int64(24 * time.Hour)

// hierarchy is ordered largest to smallest; Position counts from nanos upward.
var hierarchy = [...]TimeUnit{
	{Name: Millenniums, Position: 12, Kind: KindCalendar, Months: 12000},
	{Name: Centuries, Position: 11, Kind: KindCalendar, Months: 1200},
	{Name: Decades, Position: 10, Kind: KindCalendar, Months: 120},
	{Name: Years, Position: 9, Kind: KindCalendar, Months: 12},
	{Name: Months, Position: 8, Kind: KindCalendar, Months: 1},
	{Name: Weeks, Position: 7, Kind: KindCalendar, Days: 7},
	{Name: Days, Position: 6, Kind: KindCalendar, Days: 1},
	{Name: Hours, Position: 5, Kind: KindFixed, Multiplier: int64(time.Hour)},
	{Name: Minutes, Position: 4, Kind: KindFixed, Multiplier: int64(time.Minute)},
	{Name: Seconds, Position: 3, Kind: KindFixed, Multiplier: int64(time.Second)},
	{Name: Millis, Position: 2, Kind: KindFixed, Multiplier: int64(time.Millisecond)},
	{Name: Micros, Position: 1, Kind: KindFixed, Multiplier: int64(time.Microsecond)},
	{Name: Nanos, Position: 0, Kind: KindFixed, Multiplier: int64(time.Nanosecond)},
}

// UnitCount is the number of positions in the hierarchy
const UnitCount = len(hierarchy)

// Units returns the hierarchy ordered from millenniums to nanos
func Units() []TimeUnit {
	units := make([]TimeUnit, UnitCount)
	copy(units, hierarchy[:])
	return units
}

// UnitNames returns the unit names ordered from millenniums to nanos
func UnitNames() []UnitName {
	names := make([]UnitName, UnitCount)
	for i, u := range hierarchy {
		names[i] = u.Name
	}
	return names
}

// LookupUnit returns the unit with the given name
func LookupUnit(name UnitName) (TimeUnit, bool) {
	for _, u := range hierarchy {
		if u.Name == name {
			return u, true
		}
	}
	return TimeUnit{}, false
}

// IsValidUnitName checks if the name belongs to the hierarchy
func IsValidUnitName(name string) bool {
	_, ok := LookupUnit(UnitName(name))
	return ok
}

// index returns the slot of a unit in largest-to-smallest order
func (u TimeUnit) index() int {
	return UnitCount - 1 - u.Position
}

// MonthBased reports whether the unit advances a calendar cursor by months
func (u TimeUnit) MonthBased() bool {
	return u.Kind == KindCalendar && u.Months > 0
}

// DayBased reports whether the unit counts whole days
func (u TimeUnit) DayBased() bool {
	return u.Kind == KindCalendar && u.Days > 0
}
