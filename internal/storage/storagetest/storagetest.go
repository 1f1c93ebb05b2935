// Package storagetest runs the same behavioral checks against every
// storage.Provider implementation.
package storagetest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/storage"
	"github.com/julianstephens/weeklit/internal/week"
)

// Factory returns a fresh, initialized provider. It is called once per subtest.
type Factory func(t *testing.T) storage.Provider

var created = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

// Week builds a week containing date with the given start day and one entry
// per text on its first day.
func Week(t *testing.T, date string, startDay time.Weekday, texts ...string) models.WeekData {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	require.NoError(t, err)

	w := week.NewEmptyWeek(d, startDay, created)
	for _, text := range texts {
		w, err = week.AddEntryToDay(w, w.StartDate, text)
		require.NoError(t, err)
	}
	return w
}

// Run exercises the full Provider contract.
func Run(t *testing.T, newProvider Factory) {
	t.Run("DefaultSettings", func(t *testing.T) {
		p := newProvider(t)
		settings, err := p.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, 1, settings.WeekStartDay)
		assert.False(t, settings.SetupComplete)
	})

	t.Run("SaveSettings", func(t *testing.T) {
		p := newProvider(t)
		want := models.Settings{WeekStartDay: 0, SetupComplete: true, Timezone: "America/New_York"}
		require.NoError(t, p.SaveSettings(want))

		got, err := p.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("GetWeekNotFound", func(t *testing.T) {
		p := newProvider(t)
		_, err := p.GetWeek("2026-W02")
		assert.ErrorIs(t, err, storage.ErrWeekNotFound)
	})

	t.Run("SaveAndGetWeek", func(t *testing.T) {
		p := newProvider(t)
		w := Week(t, "2026-01-07", time.Monday, "Buy milk")
		w, err := week.AddFieldList(w, "Groceries", nil)
		require.NoError(t, err)
		w, err = week.AddFieldList(w, "Gym", models.StringPtr("2026-01-06"))
		require.NoError(t, err)
		w, err = week.SetEntryColor(w, w.StartDate, w.Days[0].Entries[0].ID, models.ColorCyan)
		require.NoError(t, err)

		require.NoError(t, p.SaveWeek(w))

		got, err := p.GetWeek(w.WeekID)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	})

	t.Run("SaveWeekUpserts", func(t *testing.T) {
		p := newProvider(t)
		w := Week(t, "2026-01-07", time.Monday, "first")
		require.NoError(t, p.SaveWeek(w))

		updated, err := week.AddEntryToDay(w, w.StartDate, "second")
		require.NoError(t, err)
		require.NoError(t, p.SaveWeek(updated))

		got, err := p.GetWeek(w.WeekID)
		require.NoError(t, err)
		assert.Len(t, got.Days[0].Entries, 2)

		all, err := p.GetAllWeeks()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("SaveWeeksAndGetAllSorted", func(t *testing.T) {
		p := newProvider(t)
		weeks := []models.WeekData{
			Week(t, "2026-01-21", time.Monday, "c"),
			Week(t, "2025-12-31", time.Monday, "a"),
			Week(t, "2026-01-07", time.Monday, "b"),
		}
		require.NoError(t, p.SaveWeeks(weeks))

		all, err := p.GetAllWeeks()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "2026-W01", all[0].WeekID)
		assert.Equal(t, "2026-W02", all[1].WeekID)
		assert.Equal(t, "2026-W04", all[2].WeekID)
	})

	t.Run("FindWeeksOverlapping", func(t *testing.T) {
		p := newProvider(t)
		monday := Week(t, "2026-01-07", time.Monday)  // 01-05..01-11
		later := Week(t, "2026-01-14", time.Monday)   // 01-12..01-18
		earlier := Week(t, "2025-12-31", time.Monday) // 12-29..01-04
		require.NoError(t, p.SaveWeeks([]models.WeekData{monday, later, earlier}))

		// Sunday-start week 01-11..01-17 touches the Monday week only on its last day.
		dates := week.DatesForWeek(time.Date(2026, 1, 12, 0, 0, 0, 0, time.Local), time.Sunday)
		got, err := p.FindWeeksOverlapping(dates)
		require.NoError(t, err)

		ids := make([]string, len(got))
		for i, w := range got {
			ids[i] = w.WeekID
		}
		assert.Equal(t, []string{"2026-W02", "2026-W03"}, ids)

		none, err := p.FindWeeksOverlapping([]string{"2030-01-01"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("ConfigPath", func(t *testing.T) {
		assert.NotEmpty(t, newProvider(t).GetConfigPath())
	})
}
