package budget

import (
	"fmt"
	"math"

	"github.com/warp/time-budget/generic"
)

const (
	// MaxDaysOff bounds holidays and vacation days individually.
	MaxDaysOff = 364
)

// DefaultInputs is the starting point offered to a new user: eight hours of
// sleep, an eight hour Monday-Friday job, 10 holidays and 14 vacation days.
func DefaultInputs() TimeInputs {
	return TimeInputs{
		SleepHoursPerDay:    8,
		WorkHoursPerDay:     8,
		Workdays:            generic.StandardWorkWeek,
		HolidaysPerYear:     10,
		VacationDaysPerYear: 14,
		ExtraHoursPerWeek:   0,
	}
}

// InvalidInputError describes a single out-of-range input.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return generic.ErrInvalidInput
}

// Validate checks the ranges the calculations assume. The ledgers themselves
// never call it: they stay well-defined at every boundary, and rejecting
// contract violations is the caller's decision.
func (in TimeInputs) Validate() error {
	if err := checkHours("sleep_hours_per_day", in.SleepHoursPerDay, generic.HoursPerDay); err != nil {
		return err
	}
	if err := checkHours("work_hours_per_day", in.WorkHoursPerDay, generic.HoursPerDay); err != nil {
		return err
	}
	if err := checkHours("extra_hours_per_week", in.ExtraHoursPerWeek, generic.HoursPerWeek); err != nil {
		return err
	}
	if err := checkDays("holidays_per_year", in.HolidaysPerYear); err != nil {
		return err
	}
	if err := checkDays("vacation_days_per_year", in.VacationDaysPerYear); err != nil {
		return err
	}
	if in.Workdays&^generic.EveryDay != 0 {
		return &InvalidInputError{Field: "workdays", Value: uint8(in.Workdays), Reason: "unsupported weekday"}
	}
	return nil
}

func checkHours(field string, v, max float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	case v < 0:
		return &InvalidInputError{Field: field, Value: v, Reason: "must not be negative"}
	case v > max:
		return &InvalidInputError{Field: field, Value: v, Reason: fmt.Sprintf("must not exceed %v", max)}
	}
	return nil
}

func checkDays(field string, v int) error {
	if v < 0 || v > MaxDaysOff {
		return &InvalidInputError{Field: field, Value: v, Reason: fmt.Sprintf("must be between 0 and %d", MaxDaysOff)}
	}
	return nil
}
