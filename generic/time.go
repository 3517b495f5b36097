package generic

import (
	"time"
)

// =============================================================================
// TIME POINT - Calendar date abstraction (the engine works in whole days)
// =============================================================================

// TimePoint is a calendar date at midnight UTC.
type TimePoint struct {
	Time time.Time
}

func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{Time: t}, nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return tp.Before(other) || tp.Equal(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return tp.After(other) || tp.Equal(other) }

// normalize drops any time of day.
func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

func (tp TimePoint) AddDays(n int) TimePoint {
	return TimePoint{Time: tp.Time.AddDate(0, 0, n)}
}

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }

// IsWorkday reports whether the date falls on one of the given weekdays.
func (tp TimePoint) IsWorkday(workdays WeekdaySet) bool { return workdays.Contains(tp.Weekday()) }

func (tp TimePoint) String() string { return tp.Time.Format("2006-01-02") }

// =============================================================================
// HOLIDAY CALENDAR - Public holidays that take a workday off the schedule
// =============================================================================

// Holiday is a named day off. Recurring holidays repeat on the same
// month/day every year.
type Holiday struct {
	ID        string
	Date      TimePoint
	Name      string
	Recurring bool
}

// OccursIn returns the date of the holiday in the given year, and false when
// a one-off holiday belongs to another year.
func (h Holiday) OccursIn(year int) (TimePoint, bool) {
	if h.Recurring {
		return NewTimePoint(year, h.Date.Month(), h.Date.Day()), true
	}
	return h.Date, h.Date.Year() == year
}

// HolidayCalendar provides holiday lookup functionality.
type HolidayCalendar interface {
	// IsHoliday checks if a date is a holiday.
	IsHoliday(date TimePoint) bool

	// GetHolidays returns all holidays falling in the given year,
	// with recurring holidays moved into that year.
	GetHolidays(year int) []Holiday
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

func DaysBetween(from, to TimePoint) int { return int(to.normalize().Sub(from.normalize()).Hours() / 24) }
func StartOfYear(year int) TimePoint     { return NewTimePoint(year, time.January, 1) }
func EndOfYear(year int) TimePoint       { return NewTimePoint(year, time.December, 31) }

// IsLeapYear follows the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
