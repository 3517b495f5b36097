/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Loads one of the built-in profiles into the store together with the
	default holiday calendar, so a fresh install has something to show.

AVAILABLE SCENARIOS:

	standard:       8h sleep, 8h work Monday-Friday
	retired:        No workdays
	busy:           Long days every day, still fits in a week
	over-committed: More hours than a week has

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Seed the default recurring holidays
 3. Save the preset profile

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "busy"}

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - factory/presets.go: Preset definitions
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/warp/time-budget/factory"
)

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	presets := factory.Presets()
	dtos := make([]ScenarioDTO, len(presets))
	for i, p := range presets {
		dtos[i] = ScenarioDTO{ID: p.ID, Name: p.Profile.Name, Description: p.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentScenario
	h.mu.RUnlock()

	preset, ok := factory.FindPreset(current)
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, ScenarioDTO{ID: preset.ID, Name: preset.Profile.Name, Description: preset.Description})
}

// LoadScenario loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	preset, ok := factory.FindPreset(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.currentScenario = ""
	if err := h.loadPreset(r.Context(), preset); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load scenario: %v", err), err)
		return
	}
	h.currentScenario = preset.ID

	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": preset.ID})
}

// ResetDatabase clears all data.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.currentScenario = ""

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *Handler) loadPreset(ctx context.Context, preset factory.Preset) error {
	if err := h.Store.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if _, err := h.seedDefaultHolidays(ctx); err != nil {
		return fmt.Errorf("holidays: %w", err)
	}

	profile, err := h.ProfileFactory.BuildProfile(preset.Profile)
	if err != nil {
		return fmt.Errorf("profile %s: %w", preset.ID, err)
	}
	return h.Store.SaveProfile(ctx, profile)
}
