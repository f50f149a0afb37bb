package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/economy"
	"github.com/unrot/unrot/internal/tui/components/habitlist"
	"github.com/unrot/unrot/internal/tui/components/ledger"
	"github.com/unrot/unrot/internal/tui/components/rewardlist"
	"github.com/unrot/unrot/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateTasks SessionState = iota
	StateHabits
	StateRewards
	StateHistory
	StateAddTask
	StateAddHabit
	StateAddReward
)

// tabCount is the number of browsable tabs; the Add* states are modal.
const tabCount = 4

type TaskFormModel struct {
	Title    string
	Points   string
	Priority string
	DueDate  string
	Category string
}

type HabitFormModel struct {
	Title  string
	Points string
}

type RewardFormModel struct {
	Title       string
	Cost        string
	Description string
}

type Model struct {
	engine        *economy.Engine
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	taskList      tasklist.Model
	habitList     habitlist.Model
	rewardList    rewardlist.Model
	ledgerModel   ledger.Model
	form          *huh.Form
	taskForm      *TaskFormModel
	habitForm     *HabitFormModel
	rewardForm    *RewardFormModel
	statusLine    string
	statusIsError bool
	quitting      bool
	width         int
	height        int
}

func NewModel(eng *economy.Engine) Model {
	today := time.Now().Format(constants.DateFormat)

	lm := ledger.New(0, 0)
	lm.SetEntries(eng.History())

	return Model{
		engine:      eng,
		state:       StateTasks,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		taskList:    tasklist.New(eng.Tasks(), 0, 0),
		habitList:   habitlist.New(eng.Habits(), today, 0, 0),
		rewardList:  rewardlist.New(eng.Rewards(), 0, 0),
		ledgerModel: lm,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateTasks, StateHabits, StateRewards:
		keys = append(keys, m.keys.Add, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateTasks, StateHabits, StateRewards:
		actions = []key.Binding{m.keys.Add}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads all engine state into the components. Called after any
// mutation so every tab reflects the same snapshot.
func (m *Model) refresh() {
	m.taskList.SetTasks(m.engine.Tasks())
	m.habitList.SetHabits(m.engine.Habits())
	m.rewardList.SetRewards(m.engine.Rewards())
	m.ledgerModel.SetEntries(m.engine.History())
}

func (m *Model) setStatus(line string) {
	m.statusLine = line
	m.statusIsError = false
}

func (m *Model) setError(line string) {
	m.statusLine = line
	m.statusIsError = true
}
