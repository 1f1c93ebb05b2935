// Package merge combines an imported week into a stored one without losing data.
package merge

import (
	"strings"
	"time"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

// MergeWeek merges imported into existing using the current time for lastModified.
func MergeWeek(existing, imported models.WeekData) models.WeekData {
	return MergeWeekAt(existing, imported, time.Now())
}

// MergeWeekAt merges imported into existing. Every existing day, list and entry
// is kept unchanged. Imported entries are appended under fresh ids unless an
// existing entry has the same text ignoring case and surrounding whitespace.
// Lists are matched by title the same way; unmatched imported lists are
// appended under a fresh id. Neither input is modified.
func MergeWeekAt(existing, imported models.WeekData, now time.Time) models.WeekData {
	out := existing.Clone()

	for i, day := range out.Days {
		idx := imported.DayIndex(day.Date)
		if idx < 0 {
			continue
		}
		out.Days[i].Entries = mergeEntries(day.Entries, imported.Days[idx].Entries)
	}

	for _, impList := range imported.FieldLists {
		if idx := findList(out.FieldLists, impList); idx >= 0 {
			out.FieldLists[idx].Entries = mergeEntries(out.FieldLists[idx].Entries, impList.Entries)
			continue
		}

		added := impList.Clone()
		added.ID = utils.NewID()
		for i := range added.Entries {
			added.Entries[i].ID = utils.NewID()
		}
		// A list scoped to a day outside the stored week has nowhere to attach.
		if added.RelatedDay != nil && out.DayIndex(*added.RelatedDay) < 0 {
			added.RelatedDay = nil
		}
		out.FieldLists = append(out.FieldLists, added)
	}

	out.Metadata = models.WeekMetadata{
		CreatedAt:    earliest(existing.Metadata.CreatedAt, imported.Metadata.CreatedAt),
		LastModified: utils.Timestamp(now),
	}
	return out
}

// mergeEntries appends the imported entries whose text matches none of the
// existing entries. Only existing is consulted, so duplicates inside imported
// are all kept.
func mergeEntries(existing, imported []models.Entry) []models.Entry {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[normalize(e.Text)] = true
	}

	merged := make([]models.Entry, len(existing), len(existing)+len(imported))
	copy(merged, existing)
	for _, e := range imported {
		if seen[normalize(e.Text)] {
			continue
		}
		e.ID = utils.NewID()
		merged = append(merged, e)
	}
	return merged
}

// findList matches by normalized title. A list with the same scope wins;
// otherwise the first list with that title is used regardless of scope.
func findList(lists []models.FieldList, target models.FieldList) int {
	key := normalize(target.Title)
	match := -1
	for i, fl := range lists {
		if normalize(fl.Title) != key {
			continue
		}
		if sameScope(fl.RelatedDay, target.RelatedDay) {
			return i
		}
		if match < 0 {
			match = i
		}
	}
	return match
}

func sameScope(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// earliest compares ISO-8601 timestamps as strings. An empty value loses.
func earliest(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case b < a:
		return b
	}
	return a
}
