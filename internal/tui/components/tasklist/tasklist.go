package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unrot/unrot/internal/models"
)

type AddTaskMsg struct{}

type CompleteTaskMsg struct {
	ID string
}

type Item struct {
	Task models.Task
}

func (i Item) Title() string {
	if i.Task.Status == models.TaskStatusDone {
		return "✓ " + i.Task.Title
	}
	return i.Task.Title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d pts | %s", i.Task.Points, i.Task.Priority)
	if i.Task.Category != "" {
		desc += " | " + i.Task.Category
	}
	if i.Task.StartTime != "" {
		desc += " | " + i.Task.StartTime
	} else if i.Task.DueDate != "" {
		desc += " | due " + i.Task.DueDate
	}
	return desc
}

func (i Item) FilterValue() string { return i.Task.Title }

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
	list list.Model
	keys KeyMap
}

func New(tasks []models.Task, width, height int) Model {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetTasks(tasks []models.Task) {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
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
			return m, func() tea.Msg { return AddTaskMsg{} }
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Task.Status != models.TaskStatusDone {
					return m, func() tea.Msg { return CompleteTaskMsg{ID: i.Task.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No tasks yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
