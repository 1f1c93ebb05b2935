// Package analyzer summarizes weeks and finds import conflicts.
package analyzer

import (
	"slices"
	"strings"

	"github.com/julianstephens/weeklit/internal/models"
)

// WeekSummary is the shape shown when choosing weeks to export or import.
type WeekSummary struct {
	WeekID         string `json:"weekId"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	EntryCount     int    `json:"entryCount"`
	FieldListCount int    `json:"fieldListCount"`
	HasContent     bool   `json:"hasContent"`
}

// ConflictInfo describes an imported week that would land on a stored week
// with content.
type ConflictInfo struct {
	WeekID          string          `json:"weekId"`
	ExistingWeek    models.WeekData `json:"existingWeek"`
	ImportedWeek    models.WeekData `json:"importedWeek"`
	DifferenceCount int             `json:"differenceCount"`
}

// HasContent reports whether any day or field list holds at least one entry.
// An empty field list alone does not count.
func HasContent(w models.WeekData) bool {
	for _, d := range w.Days {
		if len(d.Entries) > 0 {
			return true
		}
	}
	for _, fl := range w.FieldLists {
		if len(fl.Entries) > 0 {
			return true
		}
	}
	return false
}

// EntryCount sums day entries and field list entries.
func EntryCount(w models.WeekData) int {
	n := 0
	for _, d := range w.Days {
		n += len(d.Entries)
	}
	for _, fl := range w.FieldLists {
		n += len(fl.Entries)
	}
	return n
}

func Summarize(w models.WeekData) WeekSummary {
	return WeekSummary{
		WeekID:         w.WeekID,
		StartDate:      w.StartDate,
		EndDate:        w.EndDate,
		EntryCount:     EntryCount(w),
		FieldListCount: len(w.FieldLists),
		HasContent:     HasContent(w),
	}
}

// DetectConflicts returns one ConflictInfo per imported week whose weekId
// matches a stored week that has content, in import order.
func DetectConflicts(imported, existing []models.WeekData) []ConflictInfo {
	byID := make(map[string]models.WeekData, len(existing))
	for _, w := range existing {
		if _, seen := byID[w.WeekID]; !seen {
			byID[w.WeekID] = w
		}
	}

	var conflicts []ConflictInfo
	for _, imp := range imported {
		ex, ok := byID[imp.WeekID]
		if !ok || !HasContent(ex) {
			continue
		}
		diff := EntryCount(imp) - EntryCount(ex)
		if diff < 0 {
			diff = -diff
		}
		conflicts = append(conflicts, ConflictInfo{
			WeekID:          imp.WeekID,
			ExistingWeek:    ex,
			ImportedWeek:    imp,
			DifferenceCount: diff,
		})
	}
	return conflicts
}

// WeeksWithContent summarizes the non-empty weeks, newest weekId first.
func WeeksWithContent(weeks []models.WeekData) []WeekSummary {
	var out []WeekSummary
	for _, w := range weeks {
		if HasContent(w) {
			out = append(out, Summarize(w))
		}
	}
	slices.SortFunc(out, func(a, b WeekSummary) int {
		return strings.Compare(b.WeekID, a.WeekID)
	})
	return out
}
