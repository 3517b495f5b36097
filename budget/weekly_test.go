package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/generic"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func assertHours(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "%s: want %s, got %s", field, want, got)
}

func inputs(sleep, work float64, workdays generic.WeekdaySet, extra float64) budget.TimeInputs {
	return budget.TimeInputs{
		SleepHoursPerDay:  sleep,
		WorkHoursPerDay:   work,
		Workdays:          workdays,
		ExtraHoursPerWeek: extra,
	}
}

// =============================================================================
// WEEKLY LEDGER
// =============================================================================

func TestWeeklyLedger_StandardWeek(t *testing.T) {
	// GIVEN: 8h sleep, 8h work Mon-Fri, no extra
	// THEN: 56 + 40 = 96 busy, 72 free, 57.1% busy
	w := budget.ComputeWeeklyLedger(inputs(8, 8, generic.StandardWorkWeek, 0))

	assertHours(t, "56", w.SleepHours, "sleep")
	assertHours(t, "40", w.WorkHours, "work")
	assertHours(t, "0", w.ExtraHours, "extra")
	assertHours(t, "96", w.TotalHours, "total")
	assertHours(t, "72", w.FreeHours, "free")
	assert.Equal(t, "57.1%", budget.FormatPercent(w.BusyPercent()))
	assert.False(t, w.OverCommitted())
}

func TestWeeklyLedger_NoWorkdays_ZeroWork(t *testing.T) {
	// GIVEN: No workdays selected but 8h per workday
	// THEN: Work is zero regardless of the daily figure
	w := budget.ComputeWeeklyLedger(inputs(8, 8, 0, 0))

	assertHours(t, "0", w.WorkHours, "work")
	assertHours(t, "56", w.TotalHours, "total")
	assertHours(t, "112", w.FreeHours, "free")
}

func TestWeeklyLedger_BusyButNotOverCommitted(t *testing.T) {
	// GIVEN: 10h sleep, 9h work every day, 20h extra
	// THEN: 70 + 63 + 20 = 153 < 168, 15h free
	w := budget.ComputeWeeklyLedger(inputs(10, 9, generic.EveryDay, 20))

	assertHours(t, "70", w.SleepHours, "sleep")
	assertHours(t, "63", w.WorkHours, "work")
	assertHours(t, "20", w.ExtraHours, "extra")
	assertHours(t, "153", w.TotalHours, "total")
	assertHours(t, "15", w.FreeHours, "free")
	assert.False(t, w.OverCommitted(), "153 hours fit in a week")
}

func TestWeeklyLedger_OverCommitted(t *testing.T) {
	// GIVEN: 12h sleep, 10h work every day, 40h extra
	// THEN: 84 + 70 + 40 = 194 > 168, free is -26 and not clamped
	w := budget.ComputeWeeklyLedger(inputs(12, 10, generic.EveryDay, 40))

	assertHours(t, "194", w.TotalHours, "total")
	assertHours(t, "-26", w.FreeHours, "free")
	assert.True(t, w.OverCommitted())
	assert.True(t, w.PercentBusy.GreaterThan(decimal.NewFromInt(1)))
}

func TestWeeklyLedger_ExactlyFullWeek_NotOverCommitted(t *testing.T) {
	w := budget.ComputeWeeklyLedger(inputs(24, 0, 0, 0))

	assertHours(t, "168", w.TotalHours, "total")
	assertHours(t, "0", w.FreeHours, "free")
	assert.False(t, w.OverCommitted(), "168 hours is full, not over")
	assert.Equal(t, "100%", budget.FormatPercent(w.BusyPercent()))
}

func TestWeeklyLedger_SleepIsSevenTimesDaily(t *testing.T) {
	tests := []struct {
		daily float64
		want  string
	}{
		{0, "0"},
		{0.25, "1.75"},
		{6.75, "47.25"},
		{7.5, "52.5"},
		{24, "168"},
	}

	for _, tt := range tests {
		t.Run(decimal.NewFromFloat(tt.daily).String(), func(t *testing.T) {
			w := budget.ComputeWeeklyLedger(inputs(tt.daily, 0, 0, 0))
			assertHours(t, tt.want, w.SleepHours, "sleep")
		})
	}
}

func TestWeeklyLedger_WorkScalesWithWorkdayCount(t *testing.T) {
	tests := []struct {
		name     string
		workdays generic.WeekdaySet
		want     string
	}{
		{"none", 0, "0"},
		{"weekend", generic.NewWeekdaySet(0, 6), "15"},
		{"standard", generic.StandardWorkWeek, "37.5"},
		{"every day", generic.EveryDay, "52.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := budget.ComputeWeeklyLedger(inputs(0, 7.5, tt.workdays, 0))
			assertHours(t, tt.want, w.WorkHours, "work")
		})
	}
}
