package week

import (
	"fmt"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

// AddFieldList appends an empty list. A nil relatedDay makes it week-level;
// otherwise it must be one of the week's dates.
func AddFieldList(w models.WeekData, title string, relatedDay *string) (models.WeekData, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return w, err
	}
	if relatedDay != nil && w.DayIndex(*relatedDay) < 0 {
		return w, fmt.Errorf("%w: %s", ErrInvalidRelatedDay, *relatedDay)
	}

	list := models.FieldList{
		ID:      utils.NewID(),
		Title:   title,
		Entries: []models.Entry{},
	}
	if relatedDay != nil {
		list.RelatedDay = models.StringPtr(*relatedDay)
	}

	out := w.Clone()
	out.FieldLists = append(out.FieldLists, list)
	touch(&out)
	return out, nil
}

// RenameFieldList changes a list title.
func RenameFieldList(w models.WeekData, listID, title string) (models.WeekData, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return w, err
	}
	return updateFieldList(w, listID, func(fl *models.FieldList) error {
		fl.Title = title
		return nil
	})
}

// DeleteFieldList removes a list and its entries.
func DeleteFieldList(w models.WeekData, listID string) (models.WeekData, error) {
	idx := w.FieldListIndex(listID)
	if idx < 0 {
		return w, fmt.Errorf("%w: %s", ErrFieldListNotFound, listID)
	}

	out := w.Clone()
	out.FieldLists = append(out.FieldLists[:idx], out.FieldLists[idx+1:]...)
	touch(&out)
	return out, nil
}

// AddFieldListEntry appends a new incomplete entry to a list.
func AddFieldListEntry(w models.WeekData, listID, text string) (models.WeekData, error) {
	entry, err := newEntry(text)
	if err != nil {
		return w, err
	}
	return updateFieldList(w, listID, func(fl *models.FieldList) error {
		fl.Entries = append(fl.Entries, entry)
		return nil
	})
}

// ToggleFieldListEntry flips the completion state of a list entry.
func ToggleFieldListEntry(w models.WeekData, listID, entryID string) (models.WeekData, error) {
	return updateFieldList(w, listID, func(fl *models.FieldList) error {
		idx := entryIndex(fl.Entries, entryID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
		}
		fl.Entries[idx].Completed = !fl.Entries[idx].Completed
		return nil
	})
}

// DeleteFieldListEntry removes an entry from a list.
func DeleteFieldListEntry(w models.WeekData, listID, entryID string) (models.WeekData, error) {
	return updateFieldList(w, listID, func(fl *models.FieldList) error {
		idx := entryIndex(fl.Entries, entryID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
		}
		fl.Entries = append(fl.Entries[:idx], fl.Entries[idx+1:]...)
		return nil
	})
}

func updateFieldList(w models.WeekData, listID string, fn func(*models.FieldList) error) (models.WeekData, error) {
	idx := w.FieldListIndex(listID)
	if idx < 0 {
		return w, fmt.Errorf("%w: %s", ErrFieldListNotFound, listID)
	}

	out := w.Clone()
	if err := fn(&out.FieldLists[idx]); err != nil {
		return w, err
	}
	touch(&out)
	return out, nil
}
