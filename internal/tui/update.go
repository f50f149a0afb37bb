package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/economy"
	"github.com/unrot/unrot/internal/models"
	"github.com/unrot/unrot/internal/tui/components/habitlist"
	"github.com/unrot/unrot/internal/tui/components/rewardlist"
	"github.com/unrot/unrot/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 5
		m.taskList.SetSize(msg.Width-4, contentHeight)
		m.habitList.SetSize(msg.Width-4, contentHeight)
		m.rewardList.SetSize(msg.Width-4, contentHeight)
		m.ledgerModel.SetSize(msg.Width-4, contentHeight)
		return m, nil
	}

	switch m.state {
	case StateAddTask:
		return m.updateAddTask(msg)
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateAddReward:
		return m.updateAddReward(msg)
	}

	return m.updateBrowsing(msg)
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusLine = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusLine = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tasklist.AddTaskMsg:
		m.taskForm = &TaskFormModel{Priority: "medium"}
		m.form = newTaskForm(m.taskForm)
		m.previousState = m.state
		m.state = StateAddTask
		return m, m.form.Init()

	case tasklist.CompleteTaskMsg:
		result, err := m.engine.CompleteTask(msg.ID)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		if result.Applied {
			m.setStatus(fmt.Sprintf("Completed %q: +%d pts", result.Task.Title, result.Awarded))
			m.refresh()
		}
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.CompleteHabitMsg:
		today := time.Now().Format(constants.DateFormat)
		result, err := m.engine.CompleteHabit(msg.ID, today)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		if result.Applied {
			m.setStatus(fmt.Sprintf("Completed %q: +%d pts, %d day streak",
				result.Habit.Title, result.Awarded, result.Habit.Streak))
			m.refresh()
		}
		return m, nil

	case rewardlist.AddRewardMsg:
		m.rewardForm = &RewardFormModel{}
		m.form = newRewardForm(m.rewardForm)
		m.previousState = m.state
		m.state = StateAddReward
		return m, m.form.Init()

	case rewardlist.RedeemRewardMsg:
		result, err := m.engine.Redeem(msg.ID)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		if !result.Redeemed {
			m.setError(fmt.Sprintf("Not enough points for %q (costs %d, you have %d)",
				result.Reward.Title, result.Reward.Cost, result.Balance))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Redeemed %q: -%d pts", result.Reward.Title, result.Reward.Cost))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateRewards:
		m.rewardList, cmd = m.rewardList.Update(msg)
	case StateHistory:
		m.ledgerModel, cmd = m.ledgerModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		priority, ok := models.ParsePriority(m.taskForm.Priority)
		if !ok {
			priority = models.PriorityMedium
		}
		points, _ := strconv.Atoi(m.taskForm.Points)
		task, err := m.engine.AddTask(economy.TaskDraft{
			Title:    m.taskForm.Title,
			Points:   points,
			Priority: priority,
			DueDate:  m.taskForm.DueDate,
			Category: m.taskForm.Category,
		})
		if err != nil {
			m.setError(err.Error())
		} else {
			m.setStatus(fmt.Sprintf("Added task %q (%d pts)", task.Title, task.Points))
			m.refresh()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		points, _ := strconv.Atoi(m.habitForm.Points)
		habit, err := m.engine.AddHabit(economy.HabitDraft{
			Title:        m.habitForm.Title,
			PointsPerDay: points,
		})
		if err != nil {
			m.setError(err.Error())
		} else {
			m.setStatus(fmt.Sprintf("Added habit %q (%d pts/day)", habit.Title, habit.PointsPerDay))
			m.refresh()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateAddReward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		cost, _ := strconv.Atoi(m.rewardForm.Cost)
		reward, err := m.engine.AddReward(economy.RewardDraft{
			Title:       m.rewardForm.Title,
			Cost:        cost,
			Description: m.rewardForm.Description,
		})
		if err != nil {
			m.setError(err.Error())
		} else {
			m.setStatus(fmt.Sprintf("Added reward %q (%d pts)", reward.Title, reward.Cost))
			m.refresh()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}
