package budget

import "context"

// ProfileStore persists named input profiles.
//
// IMPLEMENTATIONS:
//   - store/sqlite/sqlite.go
//   - generic/store/memory.go
type ProfileStore interface {
	// SaveProfile inserts or replaces a profile by ID.
	SaveProfile(ctx context.Context, p Profile) error

	// GetProfile returns generic.ErrProfileNotFound when the ID is unknown.
	GetProfile(ctx context.Context, id string) (Profile, error)

	// ListProfiles returns all profiles ordered by name.
	ListProfiles(ctx context.Context) ([]Profile, error)

	// DeleteProfile returns generic.ErrProfileNotFound when the ID is unknown.
	DeleteProfile(ctx context.Context, id string) error
}
