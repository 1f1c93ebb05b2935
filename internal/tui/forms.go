package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weeklit/internal/analyzer"
	"github.com/julianstephens/weeklit/internal/transfer"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("aborted")

// WeekSelection holds the answers of the export week picker.
type WeekSelection struct {
	WeekIDs []string
}

// NewWeekSelectForm lets the user pick which weeks to export. Every week
// starts selected.
func NewWeekSelectForm(weeks []analyzer.WeekSummary, sel *WeekSelection) *huh.Form {
	options := make([]huh.Option[string], len(weeks))
	for i, w := range weeks {
		options[i] = huh.NewOption(WeekLabel(w), w.WeekID).Selected(true)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weeks to export").
				Options(options...).
				Value(&sel.WeekIDs).
				Validate(func(ids []string) error {
					if len(ids) == 0 {
						return fmt.Errorf("select at least one week")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmForm asks a yes/no question.
func NewConfirmForm(title, description string, ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(ok),
		),
	).WithTheme(huh.ThemeDracula())
}

// SetupAnswers holds the onboarding choices.
type SetupAnswers struct {
	WeekStartDay int
	Timezone     string
}

// NewSetupForm asks for the week start day and timezone on first run.
func NewSetupForm(a *SetupAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("First day of the week").
				Description("This cannot be changed later.").
				Options(
					huh.NewOption("Monday", 1),
					huh.NewOption("Sunday", 0),
					huh.NewOption("Saturday", 6),
				).
				Value(&a.WeekStartDay),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, or Local").
				Value(&a.Timezone),
		),
	).WithTheme(huh.ThemeDracula())
}

// SelectWeeks runs the week picker.
func SelectWeeks(weeks []analyzer.WeekSummary) ([]string, error) {
	sel := &WeekSelection{}
	if err := NewWeekSelectForm(weeks, sel).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}
	return sel.WeekIDs, nil
}

// ConfirmImport shows the preview and asks whether to apply it.
func ConfirmImport(p transfer.Preview) (bool, error) {
	ok := false
	desc := fmt.Sprintf("%d week(s) will be imported.", len(p.Weeks))
	if n := len(p.Conflicts); n > 0 {
		desc = fmt.Sprintf("%d week(s) will be imported, %d merged into existing weeks. Nothing is deleted.", len(p.Weeks), n)
	}
	if err := NewConfirmForm("Apply import?", desc, &ok).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// WeekLabel is the one-line description of a week used in pickers.
func WeekLabel(w analyzer.WeekSummary) string {
	return fmt.Sprintf("%s  %s to %s  (%d entries, %d lists)", w.WeekID, w.StartDate, w.EndDate, w.EntryCount, w.FieldListCount)
}

// RenderPreview summarizes an import before it is applied.
func RenderPreview(p transfer.Preview) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Import preview") + "\n\n")

	kind := p.Metadata.Kind.String()
	if date := p.Metadata.ExportDate(); date != "" {
		kind += ", exported " + date
	}
	b.WriteString(subtleStyle.Render("metadata: "+kind) + "\n\n")

	conflicts := make(map[string]analyzer.ConflictInfo, len(p.Conflicts))
	for _, c := range p.Conflicts {
		conflicts[c.WeekID] = c
	}
	for _, s := range p.Summaries {
		line := "  " + WeekLabel(s)
		if c, ok := conflicts[s.WeekID]; ok {
			line += "  " + warnStyle.Render(fmt.Sprintf("merges with existing week (%d stored entries)", analyzer.EntryCount(c.ExistingWeek)))
		} else {
			line += "  " + okStyle.Render("new")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
