package weekview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	listStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	// entry highlight colors, keyed by models.Color
	colorStyles = map[models.Color]lipgloss.Style{
		models.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		models.ColorCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		models.ColorPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		models.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		models.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		models.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// Model shows one week in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Week     *models.WeekData
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Week == nil {
		return emptyStyle.Render("No week loaded.")
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetWeek(w models.WeekData) {
	m.Week = &w
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	if m.Week == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(Render(*m.Week))
}

// Render draws a week as styled text: each day with its entries and
// day-scoped lists, then the week-level lists.
func Render(w models.WeekData) string {
	var b strings.Builder
	for _, d := range w.Days {
		b.WriteString(dayStyle.Render(dayTitle(d)))
		b.WriteString("\n")

		empty := len(d.Entries) == 0
		writeEntries(&b, d.Entries, "  ")
		for _, fl := range w.FieldLists {
			if !fl.IsForDay(d.Date) {
				continue
			}
			empty = false
			b.WriteString("  " + listStyle.Render(fl.Title) + "\n")
			writeEntries(&b, fl.Entries, "    ")
		}
		if empty {
			b.WriteString("  " + emptyStyle.Render("nothing planned") + "\n")
		}
		b.WriteString("\n")
	}

	var weekLevel []models.FieldList
	for _, fl := range w.FieldLists {
		if fl.IsWeekLevel() {
			weekLevel = append(weekLevel, fl)
		}
	}
	if len(weekLevel) > 0 {
		b.WriteString(dayStyle.Render("This week") + "\n")
		for _, fl := range weekLevel {
			b.WriteString("  " + listStyle.Render(fl.Title) + "\n")
			writeEntries(&b, fl.Entries, "    ")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeEntries(b *strings.Builder, entries []models.Entry, indent string) {
	for _, e := range entries {
		b.WriteString(indent + entryLine(e) + "\n")
	}
}

func entryLine(e models.Entry) string {
	if e.Completed {
		return doneStyle.Render("[x] " + e.Text)
	}
	if style, ok := colorStyles[e.Color]; ok {
		return "[ ] " + style.Render(e.Text)
	}
	return "[ ] " + e.Text
}

func dayTitle(d models.Day) string {
	t, err := utils.ParseDate(d.Date)
	if err != nil {
		return d.DayOfWeek
	}
	return fmt.Sprintf("%s, %s %d", d.DayOfWeek, t.Month(), t.Day())
}
