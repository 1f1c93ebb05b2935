package week

import (
	"slices"
	"time"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

// EntriesForDates collects the days matching dates from every overlapping week.
// When the same date appears in several weeks their entries are unioned,
// skipping entries whose id was already seen for that date.
func EntriesForDates(dates []string, overlapping []models.WeekData) map[string]models.Day {
	dayMap := make(map[string]models.Day)

	for _, w := range overlapping {
		for _, day := range w.Days {
			if !slices.Contains(dates, day.Date) {
				continue
			}
			existing, ok := dayMap[day.Date]
			if !ok {
				dayMap[day.Date] = day.Clone()
				continue
			}

			seen := make(map[string]bool, len(existing.Entries))
			for _, e := range existing.Entries {
				seen[e.ID] = true
			}
			for _, e := range day.Entries {
				if !seen[e.ID] {
					existing.Entries = append(existing.Entries, e)
					seen[e.ID] = true
				}
			}
			dayMap[day.Date] = existing
		}
	}

	return dayMap
}

// ReconstructFromOverlapping builds the week containing date, pre-populated with
// any entries stored under weeks that overlap its dates (for instance weeks saved
// under a different week start day). Field lists are not carried over.
func ReconstructFromOverlapping(date time.Time, startDay time.Weekday, now time.Time, overlapping []models.WeekData) models.WeekData {
	w := NewEmptyWeek(date, startDay, now)
	dayMap := EntriesForDates(Dates(w), overlapping)
	for i, d := range w.Days {
		if found, ok := dayMap[d.Date]; ok {
			w.Days[i].Entries = found.Entries
		}
	}
	return w
}

// Dates returns the seven date strings of the week.
func Dates(w models.WeekData) []string {
	dates := make([]string, len(w.Days))
	for i, d := range w.Days {
		dates[i] = d.Date
	}
	return dates
}

// DatesForWeek returns the seven date strings of the week containing date.
func DatesForWeek(date time.Time, startDay time.Weekday) []string {
	days := utils.WeekDates(date, startDay)
	dates := make([]string, len(days))
	for i, d := range days {
		dates[i] = utils.FormatDate(d)
	}
	return dates
}
