package markdown

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

// Exporter renders weeks as Markdown. Now stamps the exportDate of the
// metadata comment; a nil Now uses time.Now.
type Exporter struct {
	Now func() time.Time
}

// NewExporter returns an exporter using the wall clock.
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

func (e *Exporter) exportDate() string {
	now := time.Now
	if e != nil && e.Now != nil {
		now = e.Now
	}
	return utils.Timestamp(now())
}

// ExportWeek renders one week followed by its single-week metadata comment.
func (e *Exporter) ExportWeek(w models.WeekData) (string, error) {
	body, err := RenderWeek(w)
	if err != nil {
		return "", err
	}
	comment, err := metadataComment(SingleWeekMetadata{
		WeekRef:    refOf(w),
		ExportDate: e.exportDate(),
		Version:    constants.ExportFormatVersion,
	})
	if err != nil {
		return "", err
	}
	return body + "\n" + comment, nil
}

// ExportWeeks renders weeks in ascending weekId order separated by horizontal
// rules, with one multi-week metadata comment at the end. An empty input
// renders as "".
func (e *Exporter) ExportWeeks(weeks []models.WeekData) (string, error) {
	if len(weeks) == 0 {
		return "", nil
	}

	sorted := sortByWeekID(weeks)
	bodies := make([]string, len(sorted))
	refs := make([]WeekRef, len(sorted))
	for i, w := range sorted {
		body, err := RenderWeek(w)
		if err != nil {
			return "", err
		}
		bodies[i] = body
		refs[i] = refOf(w)
	}

	comment, err := metadataComment(MultiWeekMetadata{
		Weeks:      refs,
		ExportDate: e.exportDate(),
		Version:    constants.ExportFormatVersion,
		MultiWeek:  true,
	})
	if err != nil {
		return "", err
	}
	return strings.Join(bodies, "\n---\n\n") + "\n\n" + comment, nil
}

// RenderWeek renders the Markdown body of a week without any metadata.
func RenderWeek(w models.WeekData) (string, error) {
	start, err := utils.ParseDate(w.StartDate)
	if err != nil {
		return "", fmt.Errorf("week %s: invalid start date: %w", w.WeekID, err)
	}
	end, err := utils.ParseDate(w.EndDate)
	if err != nil {
		return "", fmt.Errorf("week %s: invalid end date: %w", w.WeekID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Week of %s\n\n", utils.FormatWeekRange(start, end))

	for _, day := range w.Days {
		date, err := utils.ParseDate(day.Date)
		if err != nil {
			return "", fmt.Errorf("week %s: invalid day date: %w", w.WeekID, err)
		}
		fmt.Fprintf(&b, "## %s, %s\n\n", day.DayOfWeek, utils.FormatDayHeading(date))

		if len(day.Entries) > 0 {
			writeList(&b, constants.DailyEntriesTitle, day.Entries)
		}
		for _, fl := range w.FieldLists {
			if fl.IsForDay(day.Date) {
				writeList(&b, fl.Title, fl.Entries)
			}
		}
	}

	weekLevel := slices.ContainsFunc(w.FieldLists, models.FieldList.IsWeekLevel)
	if weekLevel {
		fmt.Fprintf(&b, "## %s\n\n", constants.WeekLevelSectionTitle)
		for _, fl := range w.FieldLists {
			if fl.IsWeekLevel() {
				writeList(&b, fl.Title, fl.Entries)
			}
		}
	}

	return b.String(), nil
}

func writeList(b *strings.Builder, title string, entries []models.Entry) {
	fmt.Fprintf(b, "### %s\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "- %s %s\n", checkbox(e.Completed), e.Text)
	}
	b.WriteString("\n")
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func sortByWeekID(weeks []models.WeekData) []models.WeekData {
	sorted := slices.Clone(weeks)
	slices.SortStableFunc(sorted, func(a, b models.WeekData) int {
		return strings.Compare(a.WeekID, b.WeekID)
	})
	return sorted
}
