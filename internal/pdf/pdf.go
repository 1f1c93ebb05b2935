// Package pdf renders weeks into a printable document.
package pdf

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

var (
	ErrUnknownTemplate  = errors.New("unknown pdf template")
	ErrUnknownPaperSize = errors.New("unknown paper size")
	ErrNoWeeks          = errors.New("no weeks selected")
)

// Options selects what the renderer prints. Empty WeekIDs means every week
// passed to Render.
type Options struct {
	WeekIDs           []string
	TemplateID        string
	IncludeFieldLists bool
	PaperSize         string
}

// DefaultOptions returns the basic template on A4 with field lists.
func DefaultOptions() Options {
	return Options{
		TemplateID:        constants.PDFTemplateBasic,
		IncludeFieldLists: true,
		PaperSize:         constants.PaperA4,
	}
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the PDF bytes for the selected weeks, one page per week in
// ascending weekId order.
func (r *Renderer) Render(weeks []models.WeekData, opts Options) ([]byte, error) {
	size, err := pageSize(opts.PaperSize)
	if err != nil {
		return nil, err
	}
	if opts.TemplateID != "" && opts.TemplateID != constants.PDFTemplateBasic {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, opts.TemplateID)
	}

	selected := Select(weeks, opts.WeekIDs)
	if len(selected) == 0 {
		return nil, ErrNoWeeks
	}

	m := pdf.NewMaroto(consts.Portrait, size)
	m.SetPageMargins(15, 10, 15)

	for i, w := range selected {
		if i > 0 {
			m.AddPage()
		}
		renderBasic(m, w, opts.IncludeFieldLists)
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Select filters weeks by id and sorts them ascending. Unknown ids are ignored.
func Select(weeks []models.WeekData, ids []string) []models.WeekData {
	out := make([]models.WeekData, 0, len(weeks))
	for _, w := range weeks {
		if len(ids) == 0 || slices.Contains(ids, w.WeekID) {
			out = append(out, w)
		}
	}
	slices.SortFunc(out, func(a, b models.WeekData) int {
		return strings.Compare(a.WeekID, b.WeekID)
	})
	return out
}

func pageSize(paper string) (consts.PageSize, error) {
	switch strings.ToLower(paper) {
	case "", constants.PaperA4:
		return consts.A4, nil
	case constants.PaperLetter:
		return consts.Letter, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPaperSize, paper)
	}
}

func renderBasic(m pdf.Maroto, w models.WeekData, includeFieldLists bool) {
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(weekTitle(w), props.Text{
				Top:   3,
				Style: consts.Bold,
				Align: consts.Center,
				Size:  16,
			})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(w.WeekID, props.Text{
				Style: consts.Italic,
				Align: consts.Center,
				Size:  9,
			})
		})
	})

	for _, d := range w.Days {
		heading(m, dayTitle(d), 12)
		var rows [][]string
		for _, e := range d.Entries {
			rows = append(rows, entryRow(e))
		}
		if includeFieldLists {
			for _, fl := range w.FieldLists {
				if fl.IsForDay(d.Date) {
					for _, e := range fl.Entries {
						rows = append(rows, []string{checkbox(e.Completed), fl.Title + ": " + e.Text})
					}
				}
			}
		}
		if len(rows) == 0 {
			m.Row(6, func() {
				m.Col(12, func() {
					m.Text("-", props.Text{Size: 9, Color: color.Color{Red: 150, Green: 150, Blue: 150}})
				})
			})
			continue
		}
		table(m, rows)
	}

	if !includeFieldLists {
		return
	}
	for _, fl := range w.FieldLists {
		if !fl.IsWeekLevel() {
			continue
		}
		heading(m, fl.Title, 11)
		var rows [][]string
		for _, e := range fl.Entries {
			rows = append(rows, entryRow(e))
		}
		if len(rows) > 0 {
			table(m, rows)
		}
	}
}

func heading(m pdf.Maroto, text string, size float64) {
	m.Row(9, func() {
		m.Col(12, func() {
			m.Text(text, props.Text{
				Top:   3,
				Style: consts.Bold,
				Size:  size,
			})
		})
	})
}

func table(m pdf.Maroto, rows [][]string) {
	m.TableList([]string{"", ""}, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      1,
			GridSizes: []uint{1, 11},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{1, 11},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})
}

func entryRow(e models.Entry) []string {
	return []string{checkbox(e.Completed), e.Text}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func weekTitle(w models.WeekData) string {
	start, err1 := utils.ParseDate(w.StartDate)
	end, err2 := utils.ParseDate(w.EndDate)
	if err1 != nil || err2 != nil {
		return "Week " + w.WeekID
	}
	return "Week of " + utils.FormatWeekRange(start, end)
}

func dayTitle(d models.Day) string {
	t, err := utils.ParseDate(d.Date)
	if err != nil {
		return d.DayOfWeek
	}
	return fmt.Sprintf("%s, %s %d", d.DayOfWeek, t.Month(), t.Day())
}
