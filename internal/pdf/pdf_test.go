package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/week"
)

var now = time.Date(2026, 1, 6, 9, 30, 0, 0, time.UTC)

func sampleWeeks(t *testing.T) []models.WeekData {
	t.Helper()
	a := week.NewEmptyWeek(time.Date(2026, 1, 12, 0, 0, 0, 0, time.Local), time.Monday, now)
	a, err := week.AddEntryToDay(a, a.Days[0].Date, "Write report")
	require.NoError(t, err)
	a, err = week.AddFieldList(a, "Goals", nil)
	require.NoError(t, err)
	a, err = week.AddFieldListEntry(a, a.FieldLists[0].ID, "Ship it")
	require.NoError(t, err)

	b := week.NewEmptyWeek(time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), time.Monday, now)
	b, err = week.AddEntryToDay(b, b.Days[2].Date, "Dentist")
	require.NoError(t, err)
	return []models.WeekData{a, b}
}

func TestRender(t *testing.T) {
	weeks := sampleWeeks(t)

	for _, paper := range []string{"", constants.PaperA4, constants.PaperLetter, "LETTER"} {
		out, err := NewRenderer().Render(weeks, Options{PaperSize: paper, IncludeFieldLists: true})
		require.NoError(t, err, paper)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "paper %q", paper)
	}
}

func TestRenderErrors(t *testing.T) {
	weeks := sampleWeeks(t)
	r := NewRenderer()

	_, err := r.Render(weeks, Options{PaperSize: "tabloid"})
	assert.ErrorIs(t, err, ErrUnknownPaperSize)

	_, err = r.Render(weeks, Options{TemplateID: "fancy"})
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	_, err = r.Render(weeks, Options{WeekIDs: []string{"1999-W01"}})
	assert.ErrorIs(t, err, ErrNoWeeks)

	_, err = r.Render(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoWeeks)
}

func TestSelect(t *testing.T) {
	weeks := sampleWeeks(t)

	all := Select(weeks, nil)
	require.Len(t, all, 2)
	assert.Equal(t, "2026-W02", all[0].WeekID)
	assert.Equal(t, "2026-W03", all[1].WeekID)

	one := Select(weeks, []string{"2026-W03", "2030-W01"})
	require.Len(t, one, 1)
	assert.Equal(t, "2026-W03", one[0].WeekID)
}

func TestTitles(t *testing.T) {
	w := sampleWeeks(t)[0]
	assert.Equal(t, "Week of January 12-18, 2026", weekTitle(w))
	assert.Equal(t, "Monday, January 12", dayTitle(w.Days[0]))
	assert.Equal(t, "Week bogus", weekTitle(models.WeekData{WeekID: "bogus"}))
}
