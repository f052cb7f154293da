package activity_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"taskmaster/internal/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping store integration test")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&activity.Record{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM logs WHERE entity_id >= 900000")
	})
	return db
}

func TestStoreListByEntityOrdering(t *testing.T) {
	db := openTestDB(t)
	store := activity.NewStore(db)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	const entityID = 900001

	for i, at := range []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)} {
		r := &activity.Record{
			EntityID:    entityID,
			EntityTitle: "Ordering Test",
			Action:      activity.ActionNoteAdded,
			Description: "Note added",
			Note:        string(rune('a' + i)),
			CreatedAt:   at,
		}
		require.NoError(t, store.Append(r))
	}

	records, err := store.ListByEntity(entityID)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// newest first: t3, t2, t1
	assert.Equal(t, "c", records[0].Note)
	assert.Equal(t, "b", records[1].Note)
	assert.Equal(t, "a", records[2].Note)
}

func TestStoreChangesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	store := activity.NewStore(db)

	const entityID = 900002
	changes := activity.Changes{{
		Field: activity.FieldBudget,
		From:  activity.Number(100),
		To:    activity.Number(250.5),
	}}
	r := &activity.Record{
		EntityID:    entityID,
		EntityTitle: "Serializer Test",
		Action:      activity.ActionFieldsUpdated,
		Description: "1 field updated",
		Changes:     changes,
	}
	require.NoError(t, store.Append(r))
	assert.NotEmpty(t, r.ID)

	records, err := store.ListByEntity(entityID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Changes, 1)
	assert.Equal(t, activity.FieldBudget, records[0].Changes[0].Field)
	assert.True(t, records[0].Changes[0].To.Equal(activity.Number(250.5)))
}

func TestStoreListByEntityEmptyIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	store := activity.NewStore(db)

	records, err := store.ListByEntity(900999)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestValueJSONRoundTrip(t *testing.T) {
	values := []activity.Value{
		activity.Null(),
		activity.String("Scoping"),
		activity.Number(1234.56),
		activity.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var back activity.Value
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, v.Equal(back), "value %+v did not survive JSON", v)
	}
}
