package generic

// =============================================================================
// PERIOD - A closed range of calendar days
// =============================================================================

// Period defines an inclusive range of days [Start, End].
//
// Examples:
//   - Calendar year 2024: Jan 1 - Dec 31 (366 days)
//   - A single month: the 1st to the last day of the month
type Period struct {
	Start TimePoint
	End   TimePoint
}

// CalendarYear returns the Jan 1 - Dec 31 period of the given year.
func CalendarYear(year int) Period {
	return Period{Start: StartOfYear(year), End: EndOfYear(year)}
}

// Contains returns true if the time point is within the period [Start, End]
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.BeforeOrEqual(p.End)
}

// Days returns all days in the period as a slice of TimePoints.
// The days are generated from the calendar, so leap days are included.
func (p Period) Days() []TimePoint {
	if p.End.Before(p.Start) {
		return nil
	}
	days := make([]TimePoint, 0, p.Len())
	current := p.Start
	for current.BeforeOrEqual(p.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// Len returns the number of days in the period, both ends included.
func (p Period) Len() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return DaysBetween(p.Start, p.End) + 1
}

// CountWeekdays returns how many days of the period fall on the given weekdays.
func (p Period) CountWeekdays(set WeekdaySet) int {
	count := 0
	for _, day := range p.Days() {
		if set.Contains(day.Weekday()) {
			count++
		}
	}
	return count
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
