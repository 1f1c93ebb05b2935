package week

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/weeklit/internal/models"
)

var fixedNow = time.Date(2026, 1, 6, 9, 30, 0, 0, time.UTC)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func emptyWeek(t *testing.T) models.WeekData {
	t.Helper()
	date := time.Date(2026, 1, 7, 12, 0, 0, 0, time.Local)
	return NewEmptyWeek(date, time.Monday, fixedNow)
}

func TestNewEmptyWeek(t *testing.T) {
	w := emptyWeek(t)

	assert.Equal(t, "2026-W02", w.WeekID)
	assert.Equal(t, "2026-01-05", w.StartDate)
	assert.Equal(t, "2026-01-11", w.EndDate)
	require.Len(t, w.Days, 7)
	assert.Equal(t, "Monday", w.Days[0].DayOfWeek)
	assert.Equal(t, "Sunday", w.Days[6].DayOfWeek)
	assert.NotNil(t, w.FieldLists)
	assert.Equal(t, "2026-01-06T09:30:00.000Z", w.Metadata.CreatedAt)
	assert.Equal(t, w.Metadata.CreatedAt, w.Metadata.LastModified)
	require.NoError(t, Validate(w))
}

func TestNewEmptyWeekStartDays(t *testing.T) {
	date := time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local) // Wednesday
	tests := []struct {
		startDay  time.Weekday
		wantStart string
		wantFirst string
	}{
		{time.Sunday, "2026-01-04", "Sunday"},
		{time.Monday, "2026-01-05", "Monday"},
		{time.Saturday, "2026-01-03", "Saturday"},
	}

	for _, tt := range tests {
		t.Run(tt.startDay.String(), func(t *testing.T) {
			w := NewEmptyWeek(date, tt.startDay, fixedNow)
			assert.Equal(t, tt.wantStart, w.StartDate)
			assert.Equal(t, tt.wantFirst, w.Days[0].DayOfWeek)
			require.NoError(t, Validate(w))
		})
	}
}

func TestValidateRejectsMalformedWeeks(t *testing.T) {
	base := emptyWeek(t)

	short := base.Clone()
	short.Days = short.Days[:6]

	gap := base.Clone()
	gap.Days[3].Date = "2026-01-20"

	badList := base.Clone()
	badList.FieldLists = append(badList.FieldLists, models.FieldList{ID: "x", Title: "Stray", RelatedDay: models.StringPtr("2025-12-01")})

	for name, w := range map[string]models.WeekData{"short": short, "gap": gap, "related day": badList} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate(w))
		})
	}
}

func TestAddEntryToDay(t *testing.T) {
	freezeClock(t, fixedNow.Add(time.Hour))
	w := emptyWeek(t)

	got, err := AddEntryToDay(w, "2026-01-05", "Buy milk")
	require.NoError(t, err)

	require.Len(t, got.Days[0].Entries, 1)
	entry := got.Days[0].Entries[0]
	assert.Equal(t, "Buy milk", entry.Text)
	assert.False(t, entry.Completed)
	assert.Equal(t, models.ColorNone, entry.Color)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, w.Metadata.CreatedAt, got.Metadata.CreatedAt)
	assert.Equal(t, "2026-01-06T10:30:00.000Z", got.Metadata.LastModified)

	assert.Empty(t, w.Days[0].Entries, "input week must not be modified")
}

func TestAddEntryToDayErrors(t *testing.T) {
	w := emptyWeek(t)

	_, err := AddEntryToDay(w, "2026-02-01", "x")
	assert.True(t, errors.Is(err, ErrDayNotFound))

	_, err = AddEntryToDay(w, "2026-01-05", "   ")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestEntryMutators(t *testing.T) {
	w := emptyWeek(t)
	w, err := AddEntryToDay(w, "2026-01-06", "Write report")
	require.NoError(t, err)
	id := w.Days[1].Entries[0].ID

	toggled, err := ToggleEntry(w, "2026-01-06", id)
	require.NoError(t, err)
	assert.True(t, toggled.Days[1].Entries[0].Completed)
	assert.False(t, w.Days[1].Entries[0].Completed)

	edited, err := UpdateEntryText(toggled, "2026-01-06", id, "Write final report")
	require.NoError(t, err)
	assert.Equal(t, "Write final report", edited.Days[1].Entries[0].Text)
	assert.True(t, edited.Days[1].Entries[0].Completed)

	colored, err := SetEntryColor(edited, "2026-01-06", id, models.ColorPink)
	require.NoError(t, err)
	assert.Equal(t, models.ColorPink, colored.Days[1].Entries[0].Color)

	_, err = SetEntryColor(edited, "2026-01-06", id, models.Color("magenta"))
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = UpdateEntryText(edited, "2026-01-06", id, "")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = ToggleEntry(edited, "2026-01-06", "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	deleted, err := DeleteEntry(colored, "2026-01-06", id)
	require.NoError(t, err)
	assert.Empty(t, deleted.Days[1].Entries)
	assert.Len(t, colored.Days[1].Entries, 1)
}

func TestDeleteEntryKeepsSiblings(t *testing.T) {
	w := emptyWeek(t)
	var err error
	for _, text := range []string{"a", "b", "c"} {
		w, err = AddEntryToDay(w, "2026-01-05", text)
		require.NoError(t, err)
	}

	got, err := DeleteEntry(w, "2026-01-05", w.Days[0].Entries[1].ID)
	require.NoError(t, err)

	require.Len(t, got.Days[0].Entries, 2)
	assert.Equal(t, "a", got.Days[0].Entries[0].Text)
	assert.Equal(t, "c", got.Days[0].Entries[1].Text)
	assert.Equal(t, "b", w.Days[0].Entries[1].Text)
}

func TestFieldListMutators(t *testing.T) {
	w := emptyWeek(t)

	w, err := AddFieldList(w, "Groceries", nil)
	require.NoError(t, err)
	w, err = AddFieldList(w, "Gym Plan", models.StringPtr("2026-01-05"))
	require.NoError(t, err)
	require.Len(t, w.FieldLists, 2)
	assert.True(t, w.FieldLists[0].IsWeekLevel())
	assert.True(t, w.FieldLists[1].IsForDay("2026-01-05"))

	_, err = AddFieldList(w, "Elsewhere", models.StringPtr("2026-03-01"))
	assert.ErrorIs(t, err, ErrInvalidRelatedDay)
	_, err = AddFieldList(w, " ", nil)
	assert.ErrorIs(t, err, ErrEmptyText)

	listID := w.FieldLists[0].ID
	w, err = AddFieldListEntry(w, listID, "Eggs")
	require.NoError(t, err)
	w, err = AddFieldListEntry(w, listID, "Bread")
	require.NoError(t, err)
	require.Len(t, w.FieldLists[0].Entries, 2)

	eggs := w.FieldLists[0].Entries[0].ID
	toggled, err := ToggleFieldListEntry(w, listID, eggs)
	require.NoError(t, err)
	assert.True(t, toggled.FieldLists[0].Entries[0].Completed)
	assert.False(t, w.FieldLists[0].Entries[0].Completed)

	trimmed, err := DeleteFieldListEntry(toggled, listID, eggs)
	require.NoError(t, err)
	require.Len(t, trimmed.FieldLists[0].Entries, 1)
	assert.Equal(t, "Bread", trimmed.FieldLists[0].Entries[0].Text)

	_, err = DeleteFieldListEntry(trimmed, listID, eggs)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	renamed, err := RenameFieldList(trimmed, listID, "Shopping")
	require.NoError(t, err)
	assert.Equal(t, "Shopping", renamed.FieldLists[0].Title)
	assert.Equal(t, "Groceries", trimmed.FieldLists[0].Title)

	removed, err := DeleteFieldList(renamed, listID)
	require.NoError(t, err)
	require.Len(t, removed.FieldLists, 1)
	assert.Equal(t, "Gym Plan", removed.FieldLists[0].Title)

	_, err = DeleteFieldList(removed, listID)
	assert.ErrorIs(t, err, ErrFieldListNotFound)
}

func TestTextIsTrimmedAndSingleLine(t *testing.T) {
	w := emptyWeek(t)

	w, err := AddEntryToDay(w, "2026-01-05", "  Buy milk\t")
	require.NoError(t, err)
	id := w.Days[0].Entries[0].ID
	assert.Equal(t, "Buy milk", w.Days[0].Entries[0].Text)

	edited, err := UpdateEntryText(w, "2026-01-05", id, " Buy oat milk ")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", edited.Days[0].Entries[0].Text)

	w, err = AddFieldList(w, " Groceries ", nil)
	require.NoError(t, err)
	listID := w.FieldLists[0].ID
	assert.Equal(t, "Groceries", w.FieldLists[0].Title)

	w, err = AddFieldListEntry(w, listID, "\tEggs ")
	require.NoError(t, err)
	assert.Equal(t, "Eggs", w.FieldLists[0].Entries[0].Text)

	renamed, err := RenameFieldList(w, listID, "  Shopping ")
	require.NoError(t, err)
	assert.Equal(t, "Shopping", renamed.FieldLists[0].Title)

	multiline := []string{"line1\nline2", "line1\r\nline2", "carriage\rreturn"}
	for _, text := range multiline {
		_, err = AddEntryToDay(w, "2026-01-05", text)
		assert.ErrorIs(t, err, ErrMultilineText, "entry %q", text)
		_, err = UpdateEntryText(w, "2026-01-05", id, text)
		assert.ErrorIs(t, err, ErrMultilineText, "edit %q", text)
		_, err = AddFieldList(w, text, nil)
		assert.ErrorIs(t, err, ErrMultilineText, "title %q", text)
		_, err = RenameFieldList(w, listID, text)
		assert.ErrorIs(t, err, ErrMultilineText, "rename %q", text)
		_, err = AddFieldListEntry(w, listID, text)
		assert.ErrorIs(t, err, ErrMultilineText, "list entry %q", text)
	}

	// A trailing newline is just surrounding whitespace.
	w, err = AddEntryToDay(w, "2026-01-06", "Call mom\n")
	require.NoError(t, err)
	assert.Equal(t, "Call mom", w.Days[1].Entries[0].Text)
}

func TestDailyEntriesTitleIsReserved(t *testing.T) {
	w := emptyWeek(t)

	for _, title := range []string{"Daily Entries", "  Daily Entries ", "daily entries"} {
		_, err := AddFieldList(w, title, nil)
		assert.ErrorIs(t, err, ErrReservedTitle, "title %q", title)
		_, err = AddFieldList(w, title, models.StringPtr("2026-01-05"))
		assert.ErrorIs(t, err, ErrReservedTitle, "day title %q", title)
	}

	w, err := AddFieldList(w, "Daily Entries Backlog", nil)
	require.NoError(t, err)
	_, err = RenameFieldList(w, w.FieldLists[0].ID, "Daily Entries")
	assert.ErrorIs(t, err, ErrReservedTitle)
}
