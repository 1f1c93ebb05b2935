// Package tui holds the interactive pieces of the CLI: the week viewer and
// the forms used to pick weeks and confirm imports.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/tui/components/weekview"
)

// WeekSource opens the week containing a date, creating it when needed.
type WeekSource interface {
	OpenWeek(date time.Time) (models.WeekData, error)
}

type weekLoadedMsg struct {
	week models.WeekData
	err  error
}

type Model struct {
	source   WeekSource
	date     time.Time
	today    time.Time
	keys     KeyMap
	help     help.Model
	view     weekview.Model
	week     *models.WeekData
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(source WeekSource, date time.Time) Model {
	return Model{
		source: source,
		date:   date,
		today:  date,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		view:   weekview.New(0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.load(m.date)
}

func (m Model) load(date time.Time) tea.Cmd {
	source := m.source
	return func() tea.Msg {
		w, err := source.OpenWeek(date)
		return weekLoadedMsg{week: w, err: err}
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(source WeekSource, date time.Time) error {
	_, err := tea.NewProgram(NewModel(source, date), tea.WithAltScreen()).Run()
	return err
}
