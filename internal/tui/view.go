package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weeklit/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.err != nil:
		content = dangerStyle.Render(fmt.Sprintf("Failed to load week: %v", m.err))
	case m.week == nil:
		content = subtleStyle.Render("Loading...")
	default:
		content = m.view.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTitle(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTitle() string {
	if m.week == nil {
		return titleStyle.Render("weeklit")
	}
	title := m.week.WeekID
	start, err1 := utils.ParseDate(m.week.StartDate)
	end, err2 := utils.ParseDate(m.week.EndDate)
	if err1 == nil && err2 == nil {
		title = "Week of " + utils.FormatWeekRange(start, end)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(title),
		subtleStyle.Render(" "+m.week.WeekID),
	)
}
