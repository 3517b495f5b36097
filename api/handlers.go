/*
handlers.go - HTTP API handlers for the time budget engine

PURPOSE:
  Exposes the budget calculations via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the budget package.

ENDPOINTS:
  Ledgers (body: inputs JSON):
    POST   /api/ledger/weekly              Weekly breakdown
    POST   /api/ledger/yearly?year=        Yearly totals
    POST   /api/ledger/yearly/days?year=   Day-by-day records
    POST   /api/ledger/yearly/months?year= Month summaries

  Profiles:
    GET    /api/profiles                   List saved profiles
    POST   /api/profiles                   Save profile
    GET    /api/profiles/{id}              Get profile
    DELETE /api/profiles/{id}              Delete profile
    GET    /api/profiles/{id}/weekly       Weekly breakdown of a profile
    GET    /api/profiles/{id}/yearly?year= Yearly totals of a profile

  Holidays:
    GET    /api/holidays                   List holidays
    POST   /api/holidays                   Create holiday
    POST   /api/holidays/defaults          Add common US holidays
    DELETE /api/holidays/{id}              Delete holiday
    GET    /api/holidays/count?year=&workdays=Mon,Tue
                                           Holidays landing on workdays

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid input (negative hours, unknown weekday, bad year)
  - 404: Profile or holiday not found
  - 500: Store failures

  Over-committed weeks and years are NOT errors: they come back as 200
  with over_committed set and an advisory attached.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/factory"
	"github.com/warp/time-budget/generic"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Store is everything the handlers persist.
type Store interface {
	budget.ProfileStore
	generic.HolidayStore

	// Reset clears all data.
	Reset(ctx context.Context) error
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store          Store
	ProfileFactory *factory.ProfileFactory

	// Now supplies the default year when a request omits it.
	Now func() time.Time

	mu sync.RWMutex
	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store Store) *Handler {
	return &Handler{
		Store:          store,
		ProfileFactory: factory.NewProfileFactory(),
		Now:            time.Now,
	}
}

// =============================================================================
// LEDGER HANDLERS
// =============================================================================

// WeeklyLedger returns the weekly breakdown of the posted inputs.
func (h *Handler) WeeklyLedger(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toWeeklyDTO(in, budget.ComputeWeeklyLedger(in)))
}

// YearlyLedger returns the yearly totals of the posted inputs.
func (h *Handler) YearlyLedger(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toYearDTO(budget.ComputeYearLedger(in, year)))
}

// YearlyDays returns the day-by-day records of the posted inputs.
func (h *Handler) YearlyDays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year": year,
		"days": toDayDTOs(budget.ExpandToYear(in, year)),
	})
}

// YearlyMonths returns the month summaries of the posted inputs.
func (h *Handler) YearlyMonths(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year":   year,
		"months": toMonthDTOs(budget.SummarizeMonths(budget.ExpandToYear(in, year))),
	})
}

// =============================================================================
// PROFILE HANDLERS
// =============================================================================

// ListProfiles returns all saved profiles.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Store.ListProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles", err)
		return
	}

	dtos := make([]ProfileDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = toProfileDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateProfile saves a profile. An existing ID is replaced.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req factory.ProfileJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := h.ProfileFactory.BuildProfile(req)
	if err != nil {
		writeError(w, statusFor(err), "Invalid profile", err)
		return
	}

	if err := h.Store.SaveProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	saved, err := h.Store.GetProfile(r.Context(), profile.ID)
	if err != nil {
		writeError(w, statusFor(err), "Failed to load saved profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileDTO(saved))
}

// GetProfile returns a single profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// DeleteProfile deletes a profile.
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteProfile(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "Failed to delete profile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// GetProfileWeekly returns the weekly breakdown of a saved profile.
func (h *Handler) GetProfileWeekly(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toWeeklyDTO(profile.Inputs, budget.ComputeWeeklyLedger(profile.Inputs)))
}

// GetProfileYearly returns the yearly totals of a saved profile.
func (h *Handler) GetProfileYearly(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	profile, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toYearDTO(budget.ComputeYearLedger(profile.Inputs, year)))
}

func (h *Handler) loadProfile(w http.ResponseWriter, r *http.Request) (budget.Profile, bool) {
	id := chi.URLParam(r, "id")
	profile, err := h.Store.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), "Failed to get profile", err)
		return budget.Profile{}, false
	}
	return profile, true
}

// =============================================================================
// HOLIDAY ENDPOINTS
// =============================================================================

// ListHolidays returns all holidays.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.GetAllHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get holidays", err)
		return
	}

	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, hol := range holidays {
		dtos = append(dtos, toHolidayDTO(hol))
	}
	writeJSON(w, http.StatusOK, map[string]any{"holidays": dtos})
}

// CreateHoliday creates a new holiday.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Date == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}

	date, err := generic.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	holiday := generic.Holiday{
		ID:        "holiday-" + uuid.NewString(),
		Date:      date,
		Name:      req.Name,
		Recurring: req.Recurring,
	}

	if err := h.Store.SaveHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "created",
		"holiday": toHolidayDTO(holiday),
	})
}

// DeleteHoliday deletes a holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteHoliday(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "Failed to delete holiday", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// defaultHolidays are common US holidays with a fixed date.
var defaultHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "New Year's Day"},
	{time.June, 19, "Juneteenth"},
	{time.July, 4, "Independence Day"},
	{time.November, 11, "Veterans Day"},
	{time.December, 25, "Christmas Day"},
}

// AddDefaultHolidays adds common US holidays.
// POST /api/holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	n, err := h.seedDefaultHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add holidays", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "created",
		"count":  n,
	})
}

func (h *Handler) seedDefaultHolidays(ctx context.Context) (int, error) {
	year := h.Now().Year()
	for _, d := range defaultHolidays {
		holiday := generic.Holiday{
			ID:        fmt.Sprintf("holiday-%02d%02d", d.month, d.day),
			Date:      generic.NewTimePoint(year, d.month, d.day),
			Name:      d.name,
			Recurring: true,
		}
		if err := h.Store.SaveHoliday(ctx, holiday); err != nil {
			return 0, err
		}
	}
	return len(defaultHolidays), nil
}

// CountHolidays reports how many holidays of a year fall on the given
// workdays, the figure to use as holidays_per_year.
// GET /api/holidays/count?year=2024&workdays=Mon,Tue,Wed,Thu,Fri
func (h *Handler) CountHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}

	workdays := generic.StandardWorkWeek
	if raw, present := r.URL.Query()["workdays"]; present {
		parsed, err := generic.ParseWeekdayList(raw[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid workdays", err)
			return
		}
		workdays = parsed
	}

	// One entry per date, matching the count.
	onWorkdays := []HolidayDTO{}
	seen := make(map[string]bool)
	for _, hol := range h.Store.GetHolidays(year) {
		date := hol.Date.String()
		if !hol.Date.IsWorkday(workdays) || seen[date] {
			continue
		}
		seen[date] = true
		onWorkdays = append(onWorkdays, toHolidayDTO(hol))
	}

	writeJSON(w, http.StatusOK, HolidayCountDTO{
		Year:               year,
		Workdays:           workdays.Tokens(),
		HolidaysOnWorkdays: budget.HolidaysOnWorkdays(h.Store, year, workdays),
		Holidays:           onWorkdays,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) decodeInputs(w http.ResponseWriter, r *http.Request) (budget.TimeInputs, bool) {
	var req factory.InputsJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return budget.TimeInputs{}, false
	}

	in, err := h.ProfileFactory.BuildInputs(req)
	if err != nil {
		writeError(w, statusFor(err), "Invalid inputs", err)
		return budget.TimeInputs{}, false
	}
	return in, true
}

// parseYear reads the optional "year" query parameter, defaulting to the
// current year.
func (h *Handler) parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return h.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid year (use 1-9999)", err)
		return 0, false
	}
	return year, true
}

func statusFor(err error) int {
	switch {
	case generic.IsClientError(err):
		return http.StatusBadRequest
	case generic.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
