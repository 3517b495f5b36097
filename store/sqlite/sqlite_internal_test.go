package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanProfile_BadTimestamp(t *testing.T) {
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.db.Exec(`INSERT INTO profiles (id, name, sleep_hours_per_day, work_hours_per_day,
		workdays_json, created_at, updated_at) VALUES ('p', 'P', 8, 8, '[]', 'yesterday', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = store.GetProfile(context.Background(), "p")
	assert.ErrorContains(t, err, "bad created_at")

	_, err = store.ListProfiles(context.Background())
	assert.Error(t, err)
}

func TestGetHolidays_SkipsUnreadableRows(t *testing.T) {
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.db.Exec(`INSERT INTO holidays (id, date, name, recurring, created_at) VALUES
		('good', '2024-07-04', 'Independence Day', FALSE, '2024-01-01T00:00:00Z'),
		('bad', '2024-13-45', 'Nonsense', TRUE, '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	holidays := store.GetHolidays(2024)
	require.Len(t, holidays, 1)
	assert.Equal(t, "good", holidays[0].ID)

	_, err = store.GetAllHolidays(context.Background())
	assert.Error(t, err)
}
