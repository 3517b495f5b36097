/*
Package factory provides JSON/YAML to Go input conversion.

PURPOSE:
  Converts wire-format input profiles into budget.TimeInputs and back.
  Weekday tokens are parsed here, so an unsupported token is rejected at
  the boundary with generic.ErrUnknownWeekday before any calculation runs.

JSON SCHEMA:
  {
    "id": "standard",
    "name": "Standard office job",
    "sleep_hours_per_day": 8,
    "work_hours_per_day": 8,
    "workdays": ["Mon", "Tue", "Wed", "Thu", "Fri"],
    "holidays_per_year": 10,
    "vacation_days_per_year": 14,
    "extra_hours_per_week": 0
  }

  The same field names are used as YAML keys by the CLI.

USAGE:
  f := NewProfileFactory()
  profile, err := f.ParseProfile(jsonString)
  week := budget.ComputeWeeklyLedger(profile.Inputs)

SEE ALSO:
  - budget/types.go: TimeInputs, Profile
  - factory/presets.go: Ready-made profiles
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/generic"
)

// =============================================================================
// SCHEMA TYPES
// =============================================================================

// InputsJSON is the wire representation of budget.TimeInputs.
type InputsJSON struct {
	SleepHoursPerDay    float64  `json:"sleep_hours_per_day" yaml:"sleep_hours_per_day"`
	WorkHoursPerDay     float64  `json:"work_hours_per_day" yaml:"work_hours_per_day"`
	Workdays            []string `json:"workdays" yaml:"workdays"`
	HolidaysPerYear     int      `json:"holidays_per_year" yaml:"holidays_per_year"`
	VacationDaysPerYear int      `json:"vacation_days_per_year" yaml:"vacation_days_per_year"`
	ExtraHoursPerWeek   float64  `json:"extra_hours_per_week" yaml:"extra_hours_per_week"`
}

// ProfileJSON is a named InputsJSON.
type ProfileJSON struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	InputsJSON `yaml:",inline"`
}

// =============================================================================
// FACTORY
// =============================================================================

// ProfileFactory creates inputs and profiles from their wire form.
type ProfileFactory struct {
	// NewID generates IDs for profiles that arrive without one.
	NewID func() string
}

func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{NewID: func() string { return uuid.NewString() }}
}

// BuildInputs converts and validates wire inputs.
func (f *ProfileFactory) BuildInputs(j InputsJSON) (budget.TimeInputs, error) {
	workdays, err := generic.ParseWeekdaySet(j.Workdays)
	if err != nil {
		return budget.TimeInputs{}, &budget.InvalidInputError{
			Field:  "workdays",
			Value:  strings.Join(j.Workdays, ","),
			Reason: err.Error(),
		}
	}

	in := budget.TimeInputs{
		SleepHoursPerDay:    j.SleepHoursPerDay,
		WorkHoursPerDay:     j.WorkHoursPerDay,
		Workdays:            workdays,
		HolidaysPerYear:     j.HolidaysPerYear,
		VacationDaysPerYear: j.VacationDaysPerYear,
		ExtraHoursPerWeek:   j.ExtraHoursPerWeek,
	}
	if err := in.Validate(); err != nil {
		return budget.TimeInputs{}, err
	}
	return in, nil
}

// ParseInputs parses a JSON inputs document.
func (f *ProfileFactory) ParseInputs(data string) (budget.TimeInputs, error) {
	var j InputsJSON
	if err := json.Unmarshal([]byte(data), &j); err != nil {
		return budget.TimeInputs{}, fmt.Errorf("%w: %v", generic.ErrInvalidInput, err)
	}
	return f.BuildInputs(j)
}

// BuildProfile converts a wire profile, assigning an ID when missing.
func (f *ProfileFactory) BuildProfile(j ProfileJSON) (budget.Profile, error) {
	if strings.TrimSpace(j.Name) == "" {
		return budget.Profile{}, &budget.InvalidInputError{Field: "name", Value: j.Name, Reason: "is required"}
	}
	in, err := f.BuildInputs(j.InputsJSON)
	if err != nil {
		return budget.Profile{}, err
	}
	id := j.ID
	if id == "" {
		id = f.NewID()
	}
	return budget.Profile{ID: id, Name: j.Name, Inputs: in}, nil
}

// ParseProfile parses a JSON profile document.
func (f *ProfileFactory) ParseProfile(data string) (budget.Profile, error) {
	var j ProfileJSON
	if err := json.Unmarshal([]byte(data), &j); err != nil {
		return budget.Profile{}, fmt.Errorf("%w: %v", generic.ErrInvalidInput, err)
	}
	return f.BuildProfile(j)
}

// =============================================================================
// REVERSE CONVERSION
// =============================================================================

// ToInputsJSON converts inputs back to their wire form.
func ToInputsJSON(in budget.TimeInputs) InputsJSON {
	return InputsJSON{
		SleepHoursPerDay:    in.SleepHoursPerDay,
		WorkHoursPerDay:     in.WorkHoursPerDay,
		Workdays:            in.Workdays.Tokens(),
		HolidaysPerYear:     in.HolidaysPerYear,
		VacationDaysPerYear: in.VacationDaysPerYear,
		ExtraHoursPerWeek:   in.ExtraHoursPerWeek,
	}
}

// ToProfileJSON converts a profile back to its wire form.
func ToProfileJSON(p budget.Profile) ProfileJSON {
	return ProfileJSON{ID: p.ID, Name: p.Name, InputsJSON: ToInputsJSON(p.Inputs)}
}
