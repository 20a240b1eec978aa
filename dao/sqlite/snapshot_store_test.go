package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store, err := NewSnapshotStore(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("Failed to open snapshot store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	records := []models.BusinessRecord{
		{
			ID:          "1",
			Name:        "Cooper's Tree Service",
			Score:       4.9,
			ReviewCount: 300,
			Area:        "Knoxville",
			Tags:        []string{"Tree Removal", "Tree Trimming"},
			Notes:       "123 Main St, Knoxville, TN",
			HoursToday:  "Today: 7 AM to 6 PM",
			Website:     "https://example.com/coopers",
			Phone:       "+18655551234",
		},
		{
			ID:   "2",
			Name: "Knox Stump Grinding",
			Area: "Farragut",
		},
	}

	// Act
	err := store.ReplaceAll(records)

	// Assert
	assert.NoError(t, err)
	loaded, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, len(records), len(loaded))
	assert.Equal(t, "Cooper's Tree Service", loaded[0].Name)
	assert.Equal(t, []string{"Tree Removal", "Tree Trimming"}, loaded[0].Tags)
	assert.Equal(t, 4.9, loaded[0].Score)
	assert.Equal(t, "Knox Stump Grinding", loaded[1].Name)
}

func TestSnapshotStore_ReplaceAllDropsPreviousSnapshot(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	assert.NoError(t, store.ReplaceAll([]models.BusinessRecord{
		{ID: "old", Name: "Old Business"},
	}))

	// Act
	err := store.ReplaceAll([]models.BusinessRecord{
		{ID: "new", Name: "New Business"},
	})

	// Assert
	assert.NoError(t, err)
	loaded, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "new", loaded[0].ID)
}

func TestSnapshotStore_LoadAllEmpty(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadAll()

	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
