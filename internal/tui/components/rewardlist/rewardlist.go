package rewardlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unrot/unrot/internal/models"
)

type AddRewardMsg struct{}

type RedeemRewardMsg struct {
	ID string
}

type Item struct {
	Reward models.Reward
}

func (i Item) Title() string {
	if i.Reward.Icon != "" {
		return i.Reward.Icon + " " + i.Reward.Title
	}
	return i.Reward.Title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d pts", i.Reward.Cost)
	if i.Reward.Description != "" {
		desc += " | " + i.Reward.Description
	}
	return desc
}

func (i Item) FilterValue() string { return i.Reward.Title }

type KeyMap struct {
	Add    key.Binding
	Redeem key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Redeem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "redeem"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(rewards []models.Reward, width, height int) Model {
	items := make([]list.Item, len(rewards))
	for i, r := range rewards {
		items[i] = Item{Reward: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Rewards"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Redeem}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Redeem}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetRewards(rewards []models.Reward) {
	items := make([]list.Item, len(rewards))
	for i, r := range rewards {
		items[i] = Item{Reward: r}
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
			return m, func() tea.Msg { return AddRewardMsg{} }
		case key.Matches(msg, m.keys.Redeem):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RedeemRewardMsg{ID: i.Reward.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No rewards yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
