package activity_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"taskmaster/internal/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVRoundTrip(t *testing.T) {
	records := []activity.Record{
		{
			ID:          "r1",
			EntityID:    1,
			EntityTitle: "Runway Lighting",
			Action:      activity.ActionStatusChanged,
			ActorName:   "Alice",
			Changes: activity.Changes{{
				Field: activity.FieldStatus,
				From:  activity.String("Possible"),
				To:    activity.String("Scoping"),
			}},
			CreatedAt: time.Date(2024, 5, 1, 14, 30, 0, 0, time.Local),
		},
		{
			ID:          "r2",
			EntityID:    2,
			EntityTitle: `Terminal "B" Roof, Phase 1`,
			Action:      activity.ActionCreated,
			ActorName:   "Bob",
			CreatedAt:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local),
		},
	}

	out := activity.ExportCSV(records)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Time", "User", "Action", "Summary", "Project", "Details"}, rows[0])

	assert.Equal(t, "Alice", rows[1][2])
	assert.Equal(t, "status_changed", rows[1][3])
	assert.Equal(t, "Status changed from Possible to Scoping", rows[1][4])
	assert.Equal(t, "Status: Possible → Scoping", rows[1][6])

	// embedded quotes and commas survive the round trip
	assert.Equal(t, "Bob", rows[2][2])
	assert.Equal(t, "created", rows[2][3])
	assert.Equal(t, `Terminal "B" Roof, Phase 1`, rows[2][5])
}

func TestExportCSVMultipleChangesJoined(t *testing.T) {
	r := activity.Record{
		ID:          "r1",
		EntityTitle: "P",
		Action:      activity.ActionFieldsUpdated,
		ActorName:   "Alice",
		Changes: activity.Changes{
			{Field: activity.FieldBudget, From: activity.Number(100000), To: activity.Number(110000)},
			{Field: activity.FieldFocalOwner, From: activity.Null(), To: activity.String("Carol")},
		},
		CreatedAt: time.Now(),
	}

	rows, err := csv.NewReader(strings.NewReader(activity.ExportCSV([]activity.Record{r}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Budget: $100,000 → $110,000; Focal Owner: — → Carol", rows[1][6])
}

func TestExportCSVEmpty(t *testing.T) {
	out := activity.ExportCSV(nil)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
