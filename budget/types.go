/*
Package budget computes how a person's week and year are split between
sleep, work, extracurricular commitments and free time.

PURPOSE:
  Pure functions turn a TimeInputs value into ledgers:

    TimeInputs ─► ComputeWeeklyLedger ─► WeeklyLedger
               └► ExpandToYear ─► []DayRecord ─► AggregateYear ─► YearLedger
                                              └► SummarizeMonths ─► []MonthSummary

  FormatDuration / FormatPercent render the numbers for display, and
  Advise flags inputs worth a second look.

OVER-COMMITMENT:
  Allocated hours can exceed the hours in a day, week or year. Nothing is
  clamped and nothing fails: free hours simply go negative, and the ledgers
  expose OverCommitted() so the caller can warn.

CONCURRENCY:
  Every function is re-entrant and keeps no state between calls.
  AggregateYear sums months concurrently; decimal addition is exact, so the
  result does not depend on how the days are partitioned.

SEE ALSO:
  - generic/: TimePoint, Period, WeekdaySet
  - api/: HTTP surface over these functions
*/
package budget

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/time-budget/generic"
)

// =============================================================================
// INPUTS
// =============================================================================

// TimeInputs are the self-reported figures everything else is derived from.
type TimeInputs struct {
	SleepHoursPerDay    float64
	WorkHoursPerDay     float64
	Workdays            generic.WeekdaySet
	HolidaysPerYear     int
	VacationDaysPerYear int
	ExtraHoursPerWeek   float64
}

// DaysOff is the number of holidays plus vacation days.
func (in TimeInputs) DaysOff() int { return in.HolidaysPerYear + in.VacationDaysPerYear }

// =============================================================================
// WEEKLY LEDGER
// =============================================================================

type WeeklyLedger struct {
	SleepHours decimal.Decimal
	WorkHours  decimal.Decimal
	ExtraHours decimal.Decimal
	TotalHours decimal.Decimal

	// FreeHours is negative for an over-committed week.
	FreeHours decimal.Decimal

	// PercentBusy is TotalHours / 168 as a fraction (0.5 = half the week).
	PercentBusy decimal.Decimal
}

// OverCommitted reports whether more than 168 hours are allocated.
func (w WeeklyLedger) OverCommitted() bool {
	return w.TotalHours.GreaterThan(generic.HoursInt(generic.HoursPerWeek))
}

// BusyPercent returns PercentBusy on a 0-100 scale.
func (w WeeklyLedger) BusyPercent() decimal.Decimal {
	return w.PercentBusy.Mul(decimal.NewFromInt(100))
}

// =============================================================================
// DAY RECORD
// =============================================================================

// DayRecord is the allocation of one calendar date.
type DayRecord struct {
	Date          generic.TimePoint
	Weekday       time.Weekday
	SleepHours    decimal.Decimal
	WorkHours     decimal.Decimal
	ExtraHours    decimal.Decimal
	OccupiedHours decimal.Decimal
	FreeHours     decimal.Decimal
}

// OverCommitted reports whether more than 24 hours are allocated to the day.
func (d DayRecord) OverCommitted() bool { return d.FreeHours.IsNegative() }

// =============================================================================
// YEAR LEDGER
// =============================================================================

// Baseline holds national-average reference figures for one year.
// It is only used to compute deltas, never derived from user input
// beyond the days-off deduction.
type Baseline struct {
	Workdays   int
	WorkHours  decimal.Decimal
	SleepHours decimal.Decimal
}

type YearLedger struct {
	Year int
	Days []DayRecord

	TotalSleepHours decimal.Decimal
	TotalWorkHours  decimal.Decimal // after holiday and vacation deduction
	TotalExtraHours decimal.Decimal
	TotalFreeHours  decimal.Decimal

	// WorkingDaysCount goes negative when days off exceed scheduled workdays.
	WorkingDaysCount int
	FreeDaysCount    int

	// FreeTimePercent is on a 0-100 scale, rounded to one decimal.
	FreeTimePercent decimal.Decimal

	SleepDeltaVsAverage decimal.Decimal
	WorkDeltaVsAverage  decimal.Decimal

	Baseline Baseline
}

// DayCount is the number of calendar days covered (365 or 366).
func (y YearLedger) DayCount() int { return len(y.Days) }

// OverCommitted reports whether allocated hours exceed the hours in the year.
func (y YearLedger) OverCommitted() bool { return y.TotalFreeHours.IsNegative() }

// TimeOffExceedsWorkdays reports whether holidays and vacation outnumber
// the scheduled workdays of the year.
func (y YearLedger) TimeOffExceedsWorkdays() bool { return y.WorkingDaysCount < 0 }

// OverCommittedDays counts the days with negative free time.
func (y YearLedger) OverCommittedDays() int {
	n := 0
	for _, d := range y.Days {
		if d.OverCommitted() {
			n++
		}
	}
	return n
}

// =============================================================================
// MONTH SUMMARY
// =============================================================================

// MonthSummary totals the day records of one month, for charting.
type MonthSummary struct {
	Month       time.Month
	Days        int
	WorkingDays int
	SleepHours  decimal.Decimal
	WorkHours   decimal.Decimal
	ExtraHours  decimal.Decimal
	FreeHours   decimal.Decimal
}

// =============================================================================
// PROFILE
// =============================================================================

// Profile is a named, saved set of inputs.
type Profile struct {
	ID        string
	Name      string
	Inputs    TimeInputs
	CreatedAt time.Time
	UpdatedAt time.Time
}
