package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// header, help and padding rows around the viewport
const chromeHeight = 5

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.view.SetSize(msg.Width-4, max(msg.Height-chromeHeight, 1))
		return m, nil

	case weekLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			w := msg.week
			m.week = &w
			m.view.SetWeek(w)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.PrevWeek):
			m.date = m.date.AddDate(0, 0, -7)
			return m, m.load(m.date)
		case key.Matches(msg, m.keys.NextWeek):
			m.date = m.date.AddDate(0, 0, 7)
			return m, m.load(m.date)
		case key.Matches(msg, m.keys.Today):
			m.date = m.today
			return m, m.load(m.date)
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}
