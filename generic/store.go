/*
store.go - Persistence interface for the holiday calendar

PURPOSE:
  Defines the interface between the calendar logic and the database.
  Different implementations can use SQLite or in-memory storage.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: SQLite
  - generic/store/memory.go: In-memory for testing

SEE ALSO:
  - budget/store.go: Saved input profiles
*/
package generic

import "context"

// HolidayStore extends HolidayCalendar with write access.
type HolidayStore interface {
	HolidayCalendar

	// SaveHoliday inserts or updates a holiday. A holiday with the same
	// date and name replaces the existing one.
	SaveHoliday(ctx context.Context, h Holiday) error

	// DeleteHoliday removes a holiday. Returns ErrHolidayNotFound if missing.
	DeleteHoliday(ctx context.Context, id string) error

	// GetAllHolidays returns every stored holiday ordered by date.
	GetAllHolidays(ctx context.Context) ([]Holiday, error)
}
