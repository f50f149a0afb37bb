package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddTask, StateAddHabit, StateAddReward:
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateTasks:
		content = docStyle.Render(m.taskList.View())
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateRewards:
		content = docStyle.Render(m.rewardList.View())
	case StateHistory:
		content = docStyle.Render(m.ledgerModel.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	points := pointsStyle.Render(fmt.Sprintf("★ %d pts", m.engine.Balance()))
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewTabs(), points)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Tasks", "Habits", "Rewards", "History"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.statusLine == "" {
		return ""
	}
	if m.statusIsError {
		return errorStyle.Render(m.statusLine)
	}
	return statusStyle.Render(m.statusLine)
}
