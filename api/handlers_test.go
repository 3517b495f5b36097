/*
handlers_test.go - HTTP tests for API handlers

Tests for:
- Ledger endpoints on posted inputs
- Profile CRUD and per-profile ledgers
- Holiday calendar and workday counts
- Error status mapping (400 / 404)
*/
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/time-budget/api"
	"github.com/warp/time-budget/generic/store"
	"github.com/warp/time-budget/store/sqlite"
)

func newTestServer(t *testing.T) (*api.Handler, http.Handler) {
	h := api.NewHandler(store.NewMemory())
	h.Now = func() time.Time { return time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC) }
	return h, api.NewRouter(h)
}

func do(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const standardInputs = `{
	"sleep_hours_per_day": 8,
	"work_hours_per_day": 8,
	"workdays": ["Mon", "Tue", "Wed", "Thu", "Fri"],
	"holidays_per_year": 10,
	"vacation_days_per_year": 14,
	"extra_hours_per_week": 0
}`

// =============================================================================
// LEDGERS
// =============================================================================

func TestWeeklyLedger_Standard(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ledger/weekly", standardInputs)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[api.WeeklyLedgerDTO](t, rec)
	assert.Equal(t, 56.0, got.SleepHours)
	assert.Equal(t, 40.0, got.WorkHours)
	assert.Equal(t, 96.0, got.TotalHours)
	assert.Equal(t, 72.0, got.FreeHours)
	assert.InDelta(t, 0.5714, got.PercentBusy, 0.0001)
	assert.False(t, got.OverCommitted)
	assert.Equal(t, "72 hours", got.Display.Free)
	assert.Equal(t, "57.1%", got.Display.Busy)
	assert.Empty(t, got.Advisories)
}

func TestWeeklyLedger_OverCommittedIsNotAnError(t *testing.T) {
	// GIVEN: 12h sleep, 10h work every day, 40 extra hours
	_, srv := newTestServer(t)
	body := `{"sleep_hours_per_day": 12, "work_hours_per_day": 10,
		"workdays": ["Sun","Mon","Tue","Wed","Thu","Fri","Sat"], "extra_hours_per_week": 40}`

	// WHEN: Requesting the weekly ledger
	rec := do(t, srv, http.MethodPost, "/api/ledger/weekly", body)

	// THEN: 200 with negative free time and an error advisory
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.WeeklyLedgerDTO](t, rec)
	assert.Equal(t, 194.0, got.TotalHours)
	assert.Equal(t, -26.0, got.FreeHours)
	assert.True(t, got.OverCommitted)

	var fields []string
	for _, a := range got.Advisories {
		fields = append(fields, a.Field)
	}
	assert.Contains(t, fields, "week")
	assert.Contains(t, fields, "sleep_hours_per_day")
}

func TestWeeklyLedger_InvalidInputs(t *testing.T) {
	_, srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"sleep_hours_per_day": `},
		{"negative sleep", `{"sleep_hours_per_day": -1}`},
		{"unknown weekday", `{"workdays": ["Funday"]}`},
		{"too many vacation days", `{"vacation_days_per_year": 365}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/ledger/weekly", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[api.ErrorResponse](t, rec).Error)
		})
	}
}

func TestYearlyLedger_Standard2023(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ledger/yearly?year=2023", standardInputs)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[api.YearLedgerDTO](t, rec)
	assert.Equal(t, 2023, got.Year)
	assert.Equal(t, 365, got.Days)
	assert.Equal(t, 2920.0, got.TotalSleepHours)
	assert.Equal(t, 1888.0, got.TotalWorkHours)
	assert.Equal(t, 3952.0, got.TotalFreeHours)
	assert.Equal(t, 236, got.WorkingDays)
	assert.Equal(t, 129, got.FreeDays)
	assert.Equal(t, "45.1%", got.Display.FreeTime)
	assert.False(t, got.OverCommitted)
}

func TestYearlyLedger_DefaultsToCurrentYear(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ledger/yearly", standardInputs)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2023, decode[api.YearLedgerDTO](t, rec).Year)
}

func TestYearlyLedger_InvalidYear(t *testing.T) {
	_, srv := newTestServer(t)

	for _, year := range []string{"abc", "0", "10000"} {
		rec := do(t, srv, http.MethodPost, "/api/ledger/yearly?year="+year, standardInputs)
		assert.Equal(t, http.StatusBadRequest, rec.Code, year)
	}
}

func TestYearlyDays_LeapYear(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ledger/yearly/days?year=2024", standardInputs)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[struct {
		Year int          `json:"year"`
		Days []api.DayDTO `json:"days"`
	}](t, rec)
	require.Len(t, got.Days, 366)
	assert.Equal(t, "2024-01-01", got.Days[0].Date)
	assert.Equal(t, "Mon", got.Days[0].Weekday)
	assert.Equal(t, 8.0, got.Days[0].WorkHours)
	assert.Equal(t, "2024-02-29", got.Days[59].Date)
	assert.Equal(t, "2024-12-31", got.Days[365].Date)
}

func TestYearlyMonths(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ledger/yearly/months?year=2023", standardInputs)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[struct {
		Months []api.MonthDTO `json:"months"`
	}](t, rec)
	require.Len(t, got.Months, 12)
	assert.Equal(t, "January", got.Months[0].Month)
	assert.Equal(t, 31, got.Months[0].Days)
	assert.Equal(t, 28, got.Months[1].Days)
	assert.Equal(t, 248.0, got.Months[0].SleepHours)
}

// =============================================================================
// PROFILES
// =============================================================================

func TestProfiles_CRUD(t *testing.T) {
	_, srv := newTestServer(t)

	// Create
	rec := do(t, srv, http.MethodPost, "/api/profiles", map[string]any{
		"id":                  "me",
		"name":                "Me",
		"sleep_hours_per_day": 7,
		"work_hours_per_day":  9,
		"workdays":            []string{"Mon", "Tue", "Wed", "Thu"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[api.ProfileDTO](t, rec)
	assert.Equal(t, "me", created.ID)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu"}, created.Workdays)
	assert.NotEmpty(t, created.CreatedAt)

	// List
	rec = do(t, srv, http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]api.ProfileDTO](t, rec), 1)

	// Weekly ledger of the saved profile: 49 sleep + 36 work
	rec = do(t, srv, http.MethodGet, "/api/profiles/me/weekly", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 85.0, decode[api.WeeklyLedgerDTO](t, rec).TotalHours)

	rec = do(t, srv, http.MethodGet, "/api/profiles/me/yearly?year=2023", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2555.0, decode[api.YearLedgerDTO](t, rec).TotalSleepHours)

	// Delete
	rec = do(t, srv, http.MethodDelete, "/api/profiles/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/profiles/me", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, srv, http.MethodDelete, "/api/profiles/me", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfiles_GeneratedID(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/profiles", `{"name": "Anonymous"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, decode[api.ProfileDTO](t, rec).ID, 36)
}

func TestProfiles_Rejections(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/profiles", `{"id": "x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/profiles", `{"name": "x", "work_hours_per_day": 25}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/profiles/ghost/weekly", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func TestHolidays_CreateListDelete(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/holidays", api.CreateHolidayRequest{Date: "2023-05-29", Name: "Memorial Day"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[struct {
		Holiday api.HolidayDTO `json:"holiday"`
	}](t, rec).Holiday
	assert.Equal(t, "Mon", created.Weekday)

	rec = do(t, srv, http.MethodGet, "/api/holidays", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[struct {
		Holidays []api.HolidayDTO `json:"holidays"`
	}](t, rec).Holidays
	require.Len(t, listed, 1)

	rec = do(t, srv, http.MethodDelete, "/api/holidays/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, srv, http.MethodDelete, "/api/holidays/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHolidays_CreateRejections(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/holidays", api.CreateHolidayRequest{Name: "No date"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/holidays", api.CreateHolidayRequest{Date: "05/29/2023", Name: "Bad date"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHolidays_CountOnWorkdays(t *testing.T) {
	// GIVEN: The default recurring holidays
	_, srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/holidays/defaults", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// WHEN: Counting for 2023 on a Monday-Friday week
	rec = do(t, srv, http.MethodGet, "/api/holidays/count?year=2023", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.HolidayCountDTO](t, rec)

	// THEN: Jan 1 2023 is a Sunday and Nov 11 a Saturday, the other three land on weekdays
	assert.Equal(t, 3, got.HolidaysOnWorkdays)
	assert.Len(t, got.Holidays, 3)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, got.Workdays)

	// Sunday-only schedule: only Jan 1
	rec = do(t, srv, http.MethodGet, "/api/holidays/count?year=2023&workdays=Sun", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[api.HolidayCountDTO](t, rec).HolidaysOnWorkdays)

	rec = do(t, srv, http.MethodGet, "/api/holidays/count?workdays=Moonday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHolidays_CountListsEachDateOnce(t *testing.T) {
	// GIVEN: Two recurring holidays on the same day of the year
	_, srv := newTestServer(t)
	for _, req := range []api.CreateHolidayRequest{
		{Date: "2023-07-04", Name: "Independence Day", Recurring: true},
		{Date: "2021-07-04", Name: "Fourth of July", Recurring: true},
	} {
		require.Equal(t, http.StatusCreated, do(t, srv, http.MethodPost, "/api/holidays", req).Code)
	}

	// WHEN: Counting 2023, where July 4 is a Tuesday
	rec := do(t, srv, http.MethodGet, "/api/holidays/count?year=2023", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.HolidayCountDTO](t, rec)

	// THEN: The list agrees with the count
	assert.Equal(t, 1, got.HolidaysOnWorkdays)
	assert.Len(t, got.Holidays, 1)
}

// =============================================================================
// HOLIDAYS ON SQLITE
// =============================================================================

func newSQLiteHandler(t *testing.T) (*api.Handler, http.Handler) {
	s, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	h := api.NewHandler(s)
	return h, api.NewRouter(h)
}

func TestHolidays_DefaultsReseededNextYear(t *testing.T) {
	// GIVEN: Defaults seeded at the end of 2023
	h, srv := newSQLiteHandler(t)
	h.Now = func() time.Time { return time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC) }
	rec := do(t, srv, http.MethodPost, "/api/holidays/defaults", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// WHEN: Seeding again in 2024
	h.Now = func() time.Time { return time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC) }
	rec = do(t, srv, http.MethodPost, "/api/holidays/defaults", nil)

	// THEN: The rows move to 2024 instead of failing
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, srv, http.MethodGet, "/api/holidays", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[struct {
		Holidays []api.HolidayDTO `json:"holidays"`
	}](t, rec).Holidays
	require.Len(t, listed, 5)
	assert.Equal(t, "2024-01-01", listed[0].Date)
}

func TestHolidays_CreateTwiceReturnsStoredID(t *testing.T) {
	_, srv := newSQLiteHandler(t)
	body := api.CreateHolidayRequest{Date: "2024-07-04", Name: "July 4th"}

	require.Equal(t, http.StatusCreated, do(t, srv, http.MethodPost, "/api/holidays", body).Code)
	rec := do(t, srv, http.MethodPost, "/api/holidays", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[struct {
		Holiday api.HolidayDTO `json:"holiday"`
	}](t, rec).Holiday

	rec = do(t, srv, http.MethodGet, "/api/holidays", nil)
	listed := decode[struct {
		Holidays []api.HolidayDTO `json:"holidays"`
	}](t, rec).Holidays
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	rec = do(t, srv, http.MethodDelete, "/api/holidays/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
