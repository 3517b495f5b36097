// Package store provides in-memory store implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements budget.ProfileStore and generic.HolidayStore.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]budget.Profile
	holidays map[string]generic.Holiday
}

func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]budget.Profile),
		holidays: make(map[string]generic.Holiday),
	}
}

// Reset clears all data.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]budget.Profile)
	m.holidays = make(map[string]generic.Holiday)
	return nil
}

// =============================================================================
// PROFILES
// =============================================================================

func (m *Memory) SaveProfile(_ context.Context, p budget.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := m.profiles[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	m.profiles[p.ID] = p
	return nil
}

func (m *Memory) GetProfile(_ context.Context, id string) (budget.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return budget.Profile{}, generic.ErrProfileNotFound
	}
	return p, nil
}

func (m *Memory) ListProfiles(_ context.Context) ([]budget.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]budget.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *Memory) DeleteProfile(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[id]; !ok {
		return generic.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// SaveHoliday replaces any holiday with the same date and name.
func (m *Memory) SaveHoliday(_ context.Context, h generic.Holiday) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.holidays {
		if id != h.ID && existing.Name == h.Name && existing.Date.Equal(h.Date) {
			delete(m.holidays, id)
		}
	}
	m.holidays[h.ID] = h
	return nil
}

func (m *Memory) DeleteHoliday(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.holidays[id]; !ok {
		return generic.ErrHolidayNotFound
	}
	delete(m.holidays, id)
	return nil
}

func (m *Memory) GetAllHolidays(_ context.Context) ([]generic.Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedHolidays(), nil
}

// GetHolidays returns the holidays of a year, recurring ones moved into it.
func (m *Memory) GetHolidays(year int) []generic.Holiday {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []generic.Holiday
	for _, h := range m.sortedHolidays() {
		date, ok := h.OccursIn(year)
		if !ok {
			continue
		}
		h.Date = date
		result = append(result, h)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

func (m *Memory) IsHoliday(date generic.TimePoint) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.holidays {
		if d, ok := h.OccursIn(date.Year()); ok && d.Equal(date) {
			return true
		}
	}
	return false
}

// sortedHolidays must be called with the lock held.
func (m *Memory) sortedHolidays() []generic.Holiday {
	result := make([]generic.Holiday, 0, len(m.holidays))
	for _, h := range m.holidays {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
