package activity_test

import (
	"testing"
	"time"

	"taskmaster/internal/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedRecord(id string, action activity.Action, actor, title string, at time.Time) activity.Record {
	return activity.Record{
		ID:          id,
		EntityID:    1,
		EntityTitle: title,
		Action:      action,
		ActorName:   actor,
		CreatedAt:   at,
	}
}

func TestFilterConjunction(t *testing.T) {
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	otherDay := day.AddDate(0, 0, 1)

	records := []activity.Record{
		feedRecord("r1", activity.ActionCreated, "Alice", "Runway Lighting", day),
		feedRecord("r2", activity.ActionCreated, "Alice", "Terminal Roof", otherDay), // wrong day
		feedRecord("r3", activity.ActionCreated, "Bob", "Runway Lighting", day),      // wrong actor
	}

	got := activity.Filter(records, activity.FilterOptions{
		ActorName: "Alice",
		OnDate:    &day,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestFilterNoPredicatesReturnsAll(t *testing.T) {
	now := time.Now()
	records := []activity.Record{
		feedRecord("r1", activity.ActionCreated, "Alice", "A", now),
		feedRecord("r2", activity.ActionNoteAdded, "Bob", "B", now),
	}

	got := activity.Filter(records, activity.FilterOptions{})
	assert.Len(t, got, 2)
}

func TestFilterSearchTerm(t *testing.T) {
	now := time.Now()
	status := activity.Record{
		ID:          "r1",
		EntityTitle: "Runway Lighting",
		ActorName:   "Alice",
		Action:      activity.ActionStatusChanged,
		Changes: activity.Changes{{
			Field: activity.FieldStatus,
			From:  activity.String("Possible"),
			To:    activity.String("Scoping"),
		}},
		CreatedAt: now,
	}
	other := feedRecord("r2", activity.ActionCreated, "Bob", "Terminal Roof", now)

	records := []activity.Record{status, other}

	// matches the summary text, case-insensitively
	got := activity.Filter(records, activity.FilterOptions{SearchTerm: "scoping"})
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)

	// matches the entity title
	got = activity.Filter(records, activity.FilterOptions{SearchTerm: "terminal"})
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)

	// matches the actor name
	got = activity.Filter(records, activity.FilterOptions{SearchTerm: "alice"})
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestFilterByAction(t *testing.T) {
	now := time.Now()
	records := []activity.Record{
		feedRecord("r1", activity.ActionCreated, "Alice", "A", now),
		feedRecord("r2", activity.ActionNoteAdded, "Alice", "A", now),
	}

	got := activity.Filter(records, activity.FilterOptions{Action: activity.ActionNoteAdded})
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)
}

func TestGroupByDateStability(t *testing.T) {
	now := time.Date(2024, 5, 2, 15, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	// newest first, interleaved across the two days is impossible since the
	// input is createdAt-descending; 3 today + 2 yesterday
	records := []activity.Record{
		feedRecord("r1", activity.ActionCreated, "A", "P", now.Add(-1*time.Hour)),
		feedRecord("r2", activity.ActionCreated, "A", "P", now.Add(-2*time.Hour)),
		feedRecord("r3", activity.ActionCreated, "A", "P", now.Add(-3*time.Hour)),
		feedRecord("r4", activity.ActionCreated, "A", "P", yesterday.Add(-1*time.Hour)),
		feedRecord("r5", activity.ActionCreated, "A", "P", yesterday.Add(-2*time.Hour)),
	}

	groups := activity.GroupBy(records, activity.GroupByDate, now)
	require.Len(t, groups, 2)

	assert.Equal(t, "Today", groups[0].Key)
	assert.Equal(t, "Yesterday", groups[1].Key)

	total := 0
	for _, g := range groups {
		total += len(g.Records)
	}
	assert.Equal(t, 5, total)

	// input order preserved inside each bucket
	assert.Equal(t, "r1", groups[0].Records[0].ID)
	assert.Equal(t, "r2", groups[0].Records[1].ID)
	assert.Equal(t, "r3", groups[0].Records[2].ID)
	assert.Equal(t, "r4", groups[1].Records[0].ID)
	assert.Equal(t, "r5", groups[1].Records[1].ID)
}

func TestGroupByDateOlderDaysUseFormattedKey(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	old := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	groups := activity.GroupBy([]activity.Record{
		feedRecord("r1", activity.ActionCreated, "A", "P", old),
	}, activity.GroupByDate, now)

	require.Len(t, groups, 1)
	assert.Equal(t, "May 1, 2024", groups[0].Key)
}

func TestGroupByEntity(t *testing.T) {
	now := time.Now()
	records := []activity.Record{
		feedRecord("r1", activity.ActionCreated, "A", "Runway Lighting", now),
		feedRecord("r2", activity.ActionCreated, "A", "", now),
		feedRecord("r3", activity.ActionCreated, "A", "Runway Lighting", now),
	}

	groups := activity.GroupBy(records, activity.GroupByEntity, now)
	require.Len(t, groups, 2)
	assert.Equal(t, "Runway Lighting", groups[0].Key)
	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, "Unknown Project", groups[1].Key)
}

func TestGroupNoneSingleBucket(t *testing.T) {
	now := time.Now()
	records := []activity.Record{
		feedRecord("r1", activity.ActionCreated, "A", "P", now),
		feedRecord("r2", activity.ActionCreated, "A", "P", now),
	}

	groups := activity.GroupBy(records, activity.GroupNone, now)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, "r1", groups[0].Records[0].ID)
}
