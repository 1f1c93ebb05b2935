package markdown

import (
	"slices"
	"strings"

	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/models"
)

// WeekFilename names a single-week export.
func WeekFilename(w models.WeekData) string {
	return "week-" + w.WeekID + constants.MarkdownExtension
}

// Filename names an export of weeks. The first bound is the earliest startDate
// while the last bound is the greatest weekId.
func Filename(weeks []models.WeekData) string {
	switch len(weeks) {
	case 0:
		return constants.EmptyExportFilename
	case 1:
		return WeekFilename(weeks[0])
	}

	first := slices.MinFunc(weeks, func(a, b models.WeekData) int {
		return strings.Compare(a.StartDate, b.StartDate)
	})
	last := slices.MaxFunc(weeks, func(a, b models.WeekData) int {
		return strings.Compare(a.WeekID, b.WeekID)
	})
	return "weeks-" + first.StartDate + "-to-" + last.WeekID + constants.MarkdownExtension
}
