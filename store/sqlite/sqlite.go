/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Persists the two things worth keeping between sessions: named input
  profiles and the holiday calendar. Ledgers are never stored; they are
  recomputed from a profile on every request.

INTERFACES IMPLEMENTED:
  budget.ProfileStore:  Saved input profiles
  generic.HolidayStore: Holiday calendar (and generic.HolidayCalendar)

KEY TABLES:
  profiles: One row per named TimeInputs, workdays as a JSON token list
  holidays: One-off and recurring holidays

CONCURRENCY:
  Uses sync.RWMutex for thread-safety.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block.

USAGE:
  store, err := sqlite.New("./data/budget.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - budget/store.go: ProfileStore interface
  - generic/store.go: HolidayStore interface
  - generic/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/generic"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Saved input profiles
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		sleep_hours_per_day REAL NOT NULL,
		work_hours_per_day REAL NOT NULL,
		workdays_json TEXT NOT NULL,
		holidays_per_year INTEGER NOT NULL DEFAULT 0,
		vacation_days_per_year INTEGER NOT NULL DEFAULT 0,
		extra_hours_per_week REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_name
		ON profiles(name);

	-- Holidays (one-off and recurring)
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		recurring BOOLEAN DEFAULT FALSE,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_date
		ON holidays(date);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_unique
		ON holidays(date, name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Reset clears all data (for scenario loading).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"profiles", "holidays"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// =============================================================================
// PROFILES
// =============================================================================

// SaveProfile inserts a profile or replaces the one with the same ID,
// keeping its original created_at.
func (s *Store) SaveProfile(ctx context.Context, p budget.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workdays, err := json.Marshal(p.Inputs.Workdays)
	if err != nil {
		return fmt.Errorf("failed to encode workdays: %w", err)
	}

	now := time.Now().UTC()
	created := p.CreatedAt
	if created.IsZero() {
		created = now
	}

	query := `
		INSERT INTO profiles (id, name, sleep_hours_per_day, work_hours_per_day, workdays_json,
			holidays_per_year, vacation_days_per_year, extra_hours_per_week, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			sleep_hours_per_day = excluded.sleep_hours_per_day,
			work_hours_per_day = excluded.work_hours_per_day,
			workdays_json = excluded.workdays_json,
			holidays_per_year = excluded.holidays_per_year,
			vacation_days_per_year = excluded.vacation_days_per_year,
			extra_hours_per_week = excluded.extra_hours_per_week,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Inputs.SleepHoursPerDay,
		p.Inputs.WorkHoursPerDay,
		string(workdays),
		p.Inputs.HolidaysPerYear,
		p.Inputs.VacationDaysPerYear,
		p.Inputs.ExtraHoursPerWeek,
		created.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

const profileColumns = `id, name, sleep_hours_per_day, work_hours_per_day, workdays_json,
	holidays_per_year, vacation_days_per_year, extra_hours_per_week, created_at, updated_at`

// GetProfile returns a profile by ID.
func (s *Store) GetProfile(ctx context.Context, id string) (budget.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = ?", id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return budget.Profile{}, fmt.Errorf("%w: %s", generic.ErrProfileNotFound, id)
	}
	return p, err
}

// ListProfiles returns all profiles ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]budget.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+profileColumns+" FROM profiles ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []budget.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile deletes a profile by ID.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", generic.ErrProfileNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (budget.Profile, error) {
	var p budget.Profile
	var workdaysJSON, createdAt, updatedAt string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Inputs.SleepHoursPerDay,
		&p.Inputs.WorkHoursPerDay,
		&workdaysJSON,
		&p.Inputs.HolidaysPerYear,
		&p.Inputs.VacationDaysPerYear,
		&p.Inputs.ExtraHoursPerWeek,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return budget.Profile{}, err
	}

	if err := json.Unmarshal([]byte(workdaysJSON), &p.Inputs.Workdays); err != nil {
		return budget.Profile{}, fmt.Errorf("profile %s: bad workdays: %w", p.ID, err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return budget.Profile{}, fmt.Errorf("profile %s: bad created_at: %w", p.ID, err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return budget.Profile{}, fmt.Errorf("profile %s: bad updated_at: %w", p.ID, err)
	}
	return p, nil
}

// =============================================================================
// HOLIDAY CALENDAR IMPLEMENTATION
// =============================================================================

// SaveHoliday inserts a holiday or replaces the one with the same ID.
// Another holiday with the same date and name is replaced as well, so the
// saved row always carries h.ID.
func (s *Store) SaveHoliday(ctx context.Context, h generic.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := h.Date.Time.Format("2006-01-02")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM holidays WHERE date = ? AND name = ? AND id <> ?", date, h.Name, h.ID); err != nil {
		return fmt.Errorf("failed to replace holiday: %w", err)
	}

	query := `
		INSERT INTO holidays (id, date, name, recurring, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			name = excluded.name,
			recurring = excluded.recurring
	`
	if _, err := tx.ExecContext(ctx, query,
		h.ID,
		date,
		h.Name,
		h.Recurring,
		time.Now().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}

	return tx.Commit()
}

// DeleteHoliday deletes a holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", generic.ErrHolidayNotFound, id)
	}
	return nil
}

// GetHolidays returns all holidays in a given year.
func (s *Store) GetHolidays(year int) []generic.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, date, name, recurring
		FROM holidays
		WHERE recurring = TRUE OR strftime('%Y', date) = ?
		ORDER BY strftime('%m-%d', date) ASC, id ASC
	`

	rows, err := s.db.Query(query, fmt.Sprintf("%04d", year))
	if err != nil {
		log.Printf("sqlite: failed to query holidays for %d: %v", year, err)
		return nil
	}
	defer rows.Close()

	var holidays []generic.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			log.Printf("sqlite: skipping holiday: %v", err)
			continue
		}
		// If recurring, adjust year
		if date, ok := h.OccursIn(year); ok {
			h.Date = date
			holidays = append(holidays, h)
		}
	}

	if err := rows.Err(); err != nil {
		log.Printf("sqlite: failed to read holidays for %d: %v", year, err)
	}
	return holidays
}

// IsHoliday checks if a date is a holiday.
func (s *Store) IsHoliday(date generic.TimePoint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dateStr := date.Time.Format("2006-01-02")
	monthDay := date.Time.Format("01-02")

	query := `
		SELECT COUNT(*) FROM holidays
		WHERE (recurring = FALSE AND date = ?)
		   OR (recurring = TRUE AND strftime('%m-%d', date) = ?)
	`

	var count int
	err := s.db.QueryRow(query, dateStr, monthDay).Scan(&count)
	if err != nil {
		log.Printf("sqlite: failed to check holiday %s: %v", dateStr, err)
		return false
	}
	return count > 0
}

// GetAllHolidays returns all holidays (for admin UI).
func (s *Store) GetAllHolidays(ctx context.Context) ([]generic.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, date, name, recurring FROM holidays ORDER BY date ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []generic.Holiday{}
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func scanHoliday(row rowScanner) (generic.Holiday, error) {
	var h generic.Holiday
	var dateStr string
	if err := row.Scan(&h.ID, &dateStr, &h.Name, &h.Recurring); err != nil {
		return generic.Holiday{}, err
	}
	date, err := generic.ParseDate(dateStr)
	if err != nil {
		return generic.Holiday{}, fmt.Errorf("holiday %s: bad date %q: %w", h.ID, dateStr, err)
	}
	h.Date = date
	return h, nil
}
