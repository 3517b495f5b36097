/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the ledgers (decimal hours, time.Weekday) from the external contract
  (float hours, weekday tokens, preformatted strings).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - factory.InputsJSON / factory.ProfileJSON: Request bodies

VALIDATION:
  Validation is done by the factory and handlers, not in DTOs.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/profile.go: Input wire types
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/factory"
	"github.com/warp/time-budget/generic"
)

// =============================================================================
// LEDGERS
// =============================================================================

// AdvisoryDTO is a remark the client should display next to the inputs.
type AdvisoryDTO struct {
	Field    string `json:"field"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// WeeklyDisplayDTO holds preformatted weekly figures.
type WeeklyDisplayDTO struct {
	Sleep string `json:"sleep"`
	Work  string `json:"work"`
	Extra string `json:"extra"`
	Free  string `json:"free"`
	Busy  string `json:"busy"`
}

// WeeklyLedgerDTO is the weekly breakdown.
type WeeklyLedgerDTO struct {
	SleepHours    float64          `json:"sleep_hours"`
	WorkHours     float64          `json:"work_hours"`
	ExtraHours    float64          `json:"extra_hours"`
	TotalHours    float64          `json:"total_hours"`
	FreeHours     float64          `json:"free_hours"`
	PercentBusy   float64          `json:"percent_busy"`
	OverCommitted bool             `json:"over_committed"`
	Display       WeeklyDisplayDTO `json:"display"`
	Advisories    []AdvisoryDTO    `json:"advisories"`
}

// BaselineDTO is the national-average reference for a year.
type BaselineDTO struct {
	Workdays   int     `json:"workdays"`
	WorkHours  float64 `json:"work_hours"`
	SleepHours float64 `json:"sleep_hours"`
}

// YearDisplayDTO holds preformatted yearly figures.
type YearDisplayDTO struct {
	Sleep      string `json:"sleep"`
	Work       string `json:"work"`
	Extra      string `json:"extra"`
	Free       string `json:"free"`
	FreeTime   string `json:"free_time"`
	SleepDelta string `json:"sleep_delta"`
	WorkDelta  string `json:"work_delta"`
}

// YearLedgerDTO is the yearly breakdown without the day records.
type YearLedgerDTO struct {
	Year                   int            `json:"year"`
	Days                   int            `json:"days"`
	TotalSleepHours        float64        `json:"total_sleep_hours"`
	TotalWorkHours         float64        `json:"total_work_hours"`
	TotalExtraHours        float64        `json:"total_extra_hours"`
	TotalFreeHours         float64        `json:"total_free_hours"`
	WorkingDays            int            `json:"working_days"`
	FreeDays               int            `json:"free_days"`
	FreeTimePercent        float64        `json:"free_time_percent"`
	SleepDeltaVsAverage    float64        `json:"sleep_delta_vs_average"`
	WorkDeltaVsAverage     float64        `json:"work_delta_vs_average"`
	Baseline               BaselineDTO    `json:"baseline"`
	OverCommitted          bool           `json:"over_committed"`
	OverCommittedDays      int            `json:"over_committed_days"`
	TimeOffExceedsWorkdays bool           `json:"time_off_exceeds_workdays"`
	Display                YearDisplayDTO `json:"display"`
	Advisories             []AdvisoryDTO  `json:"advisories"`
}

// DayDTO is one calendar day of the year.
type DayDTO struct {
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	SleepHours    float64 `json:"sleep_hours"`
	WorkHours     float64 `json:"work_hours"`
	ExtraHours    float64 `json:"extra_hours"`
	OccupiedHours float64 `json:"occupied_hours"`
	FreeHours     float64 `json:"free_hours"`
}

// MonthDTO is one month of the year, for charts.
type MonthDTO struct {
	Month       string  `json:"month"`
	Days        int     `json:"days"`
	WorkingDays int     `json:"working_days"`
	SleepHours  float64 `json:"sleep_hours"`
	WorkHours   float64 `json:"work_hours"`
	ExtraHours  float64 `json:"extra_hours"`
	FreeHours   float64 `json:"free_hours"`
}

// =============================================================================
// PROFILES, HOLIDAYS, SCENARIOS
// =============================================================================

// ProfileDTO is a saved input profile.
type ProfileDTO struct {
	factory.ProfileJSON
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// HolidayDTO is a holiday in API responses.
type HolidayDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

// CreateHolidayRequest is the request to create a holiday.
type CreateHolidayRequest struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

// HolidayCountDTO reports how many holidays land on workdays.
type HolidayCountDTO struct {
	Year               int          `json:"year"`
	Workdays           []string     `json:"workdays"`
	HolidaysOnWorkdays int          `json:"holidays_on_workdays"`
	Holidays           []HolidayDTO `json:"holidays"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func hoursFloat(d decimal.Decimal) float64 { return d.InexactFloat64() }

func toAdvisoryDTOs(advice []budget.Advisory) []AdvisoryDTO {
	dtos := make([]AdvisoryDTO, 0, len(advice))
	for _, a := range advice {
		dtos = append(dtos, AdvisoryDTO{Field: a.Field, Severity: string(a.Severity), Message: a.Message})
	}
	return dtos
}

func toWeeklyDTO(in budget.TimeInputs, w budget.WeeklyLedger) WeeklyLedgerDTO {
	return WeeklyLedgerDTO{
		SleepHours:    hoursFloat(w.SleepHours),
		WorkHours:     hoursFloat(w.WorkHours),
		ExtraHours:    hoursFloat(w.ExtraHours),
		TotalHours:    hoursFloat(w.TotalHours),
		FreeHours:     hoursFloat(w.FreeHours),
		PercentBusy:   w.PercentBusy.InexactFloat64(),
		OverCommitted: w.OverCommitted(),
		Display: WeeklyDisplayDTO{
			Sleep: budget.FormatDuration(w.SleepHours),
			Work:  budget.FormatDuration(w.WorkHours),
			Extra: budget.FormatDuration(w.ExtraHours),
			Free:  budget.FormatDuration(w.FreeHours),
			Busy:  budget.FormatPercent(w.BusyPercent()),
		},
		Advisories: toAdvisoryDTOs(budget.Advise(in, w)),
	}
}

func toYearDTO(y budget.YearLedger) YearLedgerDTO {
	return YearLedgerDTO{
		Year:                y.Year,
		Days:                y.DayCount(),
		TotalSleepHours:     hoursFloat(y.TotalSleepHours),
		TotalWorkHours:      hoursFloat(y.TotalWorkHours),
		TotalExtraHours:     hoursFloat(y.TotalExtraHours),
		TotalFreeHours:      hoursFloat(y.TotalFreeHours),
		WorkingDays:         y.WorkingDaysCount,
		FreeDays:            y.FreeDaysCount,
		FreeTimePercent:     y.FreeTimePercent.InexactFloat64(),
		SleepDeltaVsAverage: hoursFloat(y.SleepDeltaVsAverage),
		WorkDeltaVsAverage:  hoursFloat(y.WorkDeltaVsAverage),
		Baseline: BaselineDTO{
			Workdays:   y.Baseline.Workdays,
			WorkHours:  hoursFloat(y.Baseline.WorkHours),
			SleepHours: hoursFloat(y.Baseline.SleepHours),
		},
		OverCommitted:          y.OverCommitted(),
		OverCommittedDays:      y.OverCommittedDays(),
		TimeOffExceedsWorkdays: y.TimeOffExceedsWorkdays(),
		Display: YearDisplayDTO{
			Sleep:      budget.FormatDuration(y.TotalSleepHours),
			Work:       budget.FormatDuration(y.TotalWorkHours),
			Extra:      budget.FormatDuration(y.TotalExtraHours),
			Free:       budget.FormatDuration(y.TotalFreeHours),
			FreeTime:   budget.FormatPercent(y.FreeTimePercent),
			SleepDelta: budget.FormatDuration(y.SleepDeltaVsAverage),
			WorkDelta:  budget.FormatDuration(y.WorkDeltaVsAverage),
		},
		Advisories: toAdvisoryDTOs(budget.AdviseYear(y)),
	}
}

func toDayDTOs(days []budget.DayRecord) []DayDTO {
	dtos := make([]DayDTO, 0, len(days))
	for _, d := range days {
		dtos = append(dtos, DayDTO{
			Date:          d.Date.String(),
			Weekday:       generic.WeekdayToken(d.Weekday),
			SleepHours:    hoursFloat(d.SleepHours),
			WorkHours:     hoursFloat(d.WorkHours),
			ExtraHours:    hoursFloat(d.ExtraHours),
			OccupiedHours: hoursFloat(d.OccupiedHours),
			FreeHours:     hoursFloat(d.FreeHours),
		})
	}
	return dtos
}

func toMonthDTOs(months []budget.MonthSummary) []MonthDTO {
	dtos := make([]MonthDTO, 0, len(months))
	for _, m := range months {
		dtos = append(dtos, MonthDTO{
			Month:       m.Month.String(),
			Days:        m.Days,
			WorkingDays: m.WorkingDays,
			SleepHours:  hoursFloat(m.SleepHours),
			WorkHours:   hoursFloat(m.WorkHours),
			ExtraHours:  hoursFloat(m.ExtraHours),
			FreeHours:   hoursFloat(m.FreeHours),
		})
	}
	return dtos
}

func toProfileDTO(p budget.Profile) ProfileDTO {
	dto := ProfileDTO{ProfileJSON: factory.ToProfileJSON(p)}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		dto.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}

func toHolidayDTO(h generic.Holiday) HolidayDTO {
	return HolidayDTO{
		ID:        h.ID,
		Date:      h.Date.String(),
		Weekday:   generic.WeekdayToken(h.Date.Weekday()),
		Name:      h.Name,
		Recurring: h.Recurring,
	}
}
