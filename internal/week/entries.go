package week

import (
	"fmt"

	"github.com/julianstephens/weeklit/internal/models"
)

// AddEntryToDay appends a new incomplete entry to the day with the given date.
func AddEntryToDay(w models.WeekData, date, text string) (models.WeekData, error) {
	idx := w.DayIndex(date)
	if idx < 0 {
		return w, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	entry, err := newEntry(text)
	if err != nil {
		return w, err
	}

	out := w.Clone()
	out.Days[idx].Entries = append(out.Days[idx].Entries, entry)
	touch(&out)
	return out, nil
}

// ToggleEntry flips the completion state of a day entry.
func ToggleEntry(w models.WeekData, date, entryID string) (models.WeekData, error) {
	return updateDayEntry(w, date, entryID, func(e *models.Entry) error {
		e.Completed = !e.Completed
		return nil
	})
}

// UpdateEntryText replaces the text of a day entry.
func UpdateEntryText(w models.WeekData, date, entryID, text string) (models.WeekData, error) {
	text, err := cleanText(text)
	if err != nil {
		return w, err
	}
	return updateDayEntry(w, date, entryID, func(e *models.Entry) error {
		e.Text = text
		return nil
	})
}

// SetEntryColor recolors a day entry.
func SetEntryColor(w models.WeekData, date, entryID string, color models.Color) (models.WeekData, error) {
	if !color.Valid() {
		return w, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return updateDayEntry(w, date, entryID, func(e *models.Entry) error {
		e.Color = color
		return nil
	})
}

// DeleteEntry removes a day entry.
func DeleteEntry(w models.WeekData, date, entryID string) (models.WeekData, error) {
	dayIdx := w.DayIndex(date)
	if dayIdx < 0 {
		return w, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	entryIdx := entryIndex(w.Days[dayIdx].Entries, entryID)
	if entryIdx < 0 {
		return w, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}

	out := w.Clone()
	entries := out.Days[dayIdx].Entries
	out.Days[dayIdx].Entries = append(entries[:entryIdx], entries[entryIdx+1:]...)
	touch(&out)
	return out, nil
}

func updateDayEntry(w models.WeekData, date, entryID string, fn func(*models.Entry) error) (models.WeekData, error) {
	dayIdx := w.DayIndex(date)
	if dayIdx < 0 {
		return w, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	entryIdx := entryIndex(w.Days[dayIdx].Entries, entryID)
	if entryIdx < 0 {
		return w, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}

	out := w.Clone()
	if err := fn(&out.Days[dayIdx].Entries[entryIdx]); err != nil {
		return w, err
	}
	touch(&out)
	return out, nil
}

func entryIndex(entries []models.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
