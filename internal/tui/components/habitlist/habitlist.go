package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unrot/unrot/internal/models"
)

type AddHabitMsg struct{}

type CompleteHabitMsg struct {
	ID string
}

type Item struct {
	Habit models.Habit
	Today string
}

func (i Item) Title() string {
	if i.Habit.LastCompleted == i.Today {
		return "✓ " + i.Habit.Title
	}
	return i.Habit.Title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d pts/day", i.Habit.PointsPerDay)
	if i.Habit.Streak > 0 {
		desc += fmt.Sprintf(" | 🔥 %d day streak", i.Habit.Streak)
	}
	if i.Habit.LastCompleted == i.Today {
		desc += " | done today"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add      key.Binding
	Complete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "complete"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today string
}

func New(habits []models.Habit, today string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete}
	}

	m := Model{list: l, keys: keys, today: today}
	m.SetHabits(habits)
	return m
}

func (m *Model) SetHabits(habits []models.Habit) {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h, Today: m.today}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit.LastCompleted != m.today {
					return m, func() tea.Msg { return CompleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
