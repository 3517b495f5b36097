/*
Package generic provides the calendar and quantity primitives of the time
budget engine.

PURPOSE:
  This package contains domain-agnostic types the budget calculations are
  built on: calendar days, periods, weekday sets, holidays and hour
  quantities. It knows nothing about sleep, work or free time.

KEY CONCEPTS:
  - TimePoint: A calendar date (time.go)
  - Period: An inclusive range of days, e.g. a calendar year (period.go)
  - WeekdaySet: The days of the week someone works (weekday.go)
  - Holiday / HolidayCalendar: Public holidays (time.go)
  - Hours: Exact hour quantities backed by decimal.Decimal (this file)

DESIGN PRINCIPLES:
  1. Immutability: All values are passed by value and never mutated
  2. Precision: Hours use decimal.Decimal so year-long sums stay exact
  3. Calendar truth: Day counts come from generated dates, never constants

SEE ALSO:
  - budget/: The weekly and yearly ledgers built on these types
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// HOURS - Exact hour quantities
// =============================================================================

const (
	HoursPerDay    = 24
	DaysPerWeek    = 7
	HoursPerWeek   = HoursPerDay * DaysPerWeek
	MinutesPerHour = 60
)

// Hours converts a float hour figure (slider input) to an exact quantity.
func Hours(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// HoursInt converts a whole number of hours.
func HoursInt(value int) decimal.Decimal {
	return decimal.NewFromInt(int64(value))
}

// SumHours adds hour quantities. The empty sum is zero.
func SumHours(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
