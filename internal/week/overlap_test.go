package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/weeklit/internal/models"
)

func TestEntriesForDatesUnionsByID(t *testing.T) {
	shared := models.Entry{ID: "shared", Text: "Standup"}

	sundayWeek := NewEmptyWeek(time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local), time.Sunday, fixedNow)
	mondayWeek := NewEmptyWeek(time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local), time.Monday, fixedNow)

	// 2026-01-06 is index 2 of the Sunday week and index 1 of the Monday week.
	sundayWeek.Days[2].Entries = []models.Entry{shared, {ID: "s1", Text: "From sunday week"}}
	mondayWeek.Days[1].Entries = []models.Entry{shared, {ID: "m1", Text: "From monday week"}}

	got := EntriesForDates([]string{"2026-01-06", "2026-01-10"}, []models.WeekData{sundayWeek, mondayWeek})

	require.Contains(t, got, "2026-01-06")
	entries := got["2026-01-06"].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "shared", entries[0].ID)
	assert.Equal(t, "s1", entries[1].ID)
	assert.Equal(t, "m1", entries[2].ID)

	assert.Contains(t, got, "2026-01-10")
	assert.NotContains(t, got, "2026-01-04")

	assert.Len(t, sundayWeek.Days[2].Entries, 2, "inputs must not be modified")
}

func TestEntriesForDatesKeepsSameTextDifferentIDs(t *testing.T) {
	a := NewEmptyWeek(time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local), time.Monday, fixedNow)
	b := a.Clone()
	a.Days[0].Entries = []models.Entry{{ID: "1", Text: "Buy milk"}}
	b.Days[0].Entries = []models.Entry{{ID: "2", Text: "buy milk"}}

	got := EntriesForDates([]string{"2026-01-05"}, []models.WeekData{a, b})
	assert.Len(t, got["2026-01-05"].Entries, 2)
}

func TestReconstructFromOverlapping(t *testing.T) {
	stored := NewEmptyWeek(time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local), time.Monday, fixedNow)
	stored.Days[0].Entries = []models.Entry{{ID: "mon", Text: "Monday task"}}
	stored.Days[6].Entries = []models.Entry{{ID: "sun", Text: "Sunday task"}}
	stored.FieldLists = []models.FieldList{{ID: "fl", Title: "Groceries", Entries: []models.Entry{}}}

	// A Sunday-start week beginning 2026-01-11 overlaps only the stored Sunday.
	got := ReconstructFromOverlapping(time.Date(2026, 1, 12, 0, 0, 0, 0, time.Local), time.Sunday, fixedNow, []models.WeekData{stored})

	assert.Equal(t, "2026-01-11", got.StartDate)
	require.Len(t, got.Days[0].Entries, 1)
	assert.Equal(t, "sun", got.Days[0].Entries[0].ID)
	for _, d := range got.Days[1:] {
		assert.Empty(t, d.Entries)
	}
	assert.Empty(t, got.FieldLists)
}

func TestDatesForWeek(t *testing.T) {
	got := DatesForWeek(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), time.Monday)
	assert.Equal(t, []string{
		"2025-12-29", "2025-12-30", "2025-12-31",
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04",
	}, got)
}
