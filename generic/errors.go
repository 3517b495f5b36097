/*
errors.go - Centralized error types for the engine

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Domain packages wrap these errors with additional context.

ERROR CATEGORIES:
  1. Input errors - Contract violations (negative hours, unknown weekday)
  2. Lookup errors - Missing profiles or holidays

Over-committed weeks and years are NOT errors. They are reported on the
ledgers and the caller decides how to present them.

USAGE:
    if errors.Is(err, generic.ErrInvalidInput) {
        // 400 Bad Request
    }
*/
package generic

import (
	"errors"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when inputs violate their documented ranges.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownWeekday is returned for an unsupported weekday token.
	ErrUnknownWeekday = errors.New("unknown weekday")

	// ErrProfileNotFound is returned when a saved profile doesn't exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrHolidayNotFound is returned when a holiday doesn't exist.
	ErrHolidayNotFound = errors.New("holiday not found")
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUnknownWeekday)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrHolidayNotFound)
}
