package markdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/week"
)

var (
	exportTime = time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	importTime = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
)

func fixedExporter() *Exporter {
	return &Exporter{Now: func() time.Time { return exportTime }}
}

func fixedOptions(startDay time.Weekday) ParseOptions {
	return ParseOptions{StartDay: startDay, Now: func() time.Time { return importTime }}
}

// newWeek builds the Monday-start week containing date.
func newWeek(t *testing.T, date string) models.WeekData {
	t.Helper()
	return newWeekStarting(t, date, time.Monday)
}

func newWeekStarting(t *testing.T, date string, startDay time.Weekday) models.WeekData {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	require.NoError(t, err)
	return week.NewEmptyWeek(d, startDay, exportTime.Add(-24*time.Hour))
}

func addEntry(t *testing.T, w models.WeekData, date, text string, done bool) models.WeekData {
	t.Helper()
	w, err := week.AddEntryToDay(w, date, text)
	require.NoError(t, err)
	if done {
		idx := w.DayIndex(date)
		id := w.Days[idx].Entries[len(w.Days[idx].Entries)-1].ID
		w, err = week.ToggleEntry(w, date, id)
		require.NoError(t, err)
	}
	return w
}

func addList(t *testing.T, w models.WeekData, title string, relatedDay *string, entries ...string) models.WeekData {
	t.Helper()
	w, err := week.AddFieldList(w, title, relatedDay)
	require.NoError(t, err)
	id := w.FieldLists[len(w.FieldLists)-1].ID
	for _, text := range entries {
		w, err = week.AddFieldListEntry(w, id, text)
		require.NoError(t, err)
	}
	return w
}

// sampleWeek is 2026-W02 with a daily entry, a Monday list and a week-level list.
func sampleWeek(t *testing.T) models.WeekData {
	t.Helper()
	w := newWeek(t, "2026-01-07")
	w = addEntry(t, w, "2026-01-05", "Buy milk", true)
	w = addEntry(t, w, "2026-01-07", "Call the plumber", false)
	w = addList(t, w, "Gym Plan", models.StringPtr("2026-01-05"), "Squats")
	w = addList(t, w, "Groceries", nil, "Eggs", "Bread")
	return w
}
