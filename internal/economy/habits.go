package economy

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

// HabitDraft carries user input for a new habit. Habits are always daily;
// there is no frequency choice to make.
type HabitDraft struct {
	Title        string
	PointsPerDay int
}

// HabitResult reports a completion attempt. Applied is false when the habit
// is unknown or was already credited today.
type HabitResult struct {
	Habit   models.Habit
	Awarded int
	Applied bool
}

// AddHabit creates a habit from a draft with pointsPerDay clamped into
// [1,2], a zero streak, and no completion recorded yet.
func (e *Engine) AddHabit(draft HabitDraft) (models.Habit, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return models.Habit{}, errors.New("habit title is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	habit := models.Habit{
		ID:           e.newID(),
		Title:        title,
		Streak:       0,
		PointsPerDay: clamp(draft.PointsPerDay, constants.HabitPointsMin, constants.HabitPointsMax),
		Frequency:    models.FrequencyDaily,
	}
	e.habits = append(e.habits, habit)
	return habit, e.persist()
}

// CompleteHabit credits a habit for the given calendar day. At most one
// completion is credited per day regardless of how often it is invoked;
// repeats the same day are no-ops. today must be in YYYY-MM-DD format.
//
// The streak branches three ways on the gap to the previous completion:
// done yesterday continues the streak, never done starts it at 1, and a
// gap of two or more days resets it to 1. The comparison is on calendar
// date strings, deliberately not timestamp arithmetic.
func (e *Engine) CompleteHabit(id, today string) (HabitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i := range e.habits {
		if e.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || e.habits[idx].LastCompleted == today {
		return HabitResult{}, nil
	}

	habit := &e.habits[idx]
	switch {
	case habit.LastCompleted == "":
		habit.Streak = 1
	case isNextDay(habit.LastCompleted, today):
		habit.Streak++
	default:
		habit.Streak = 1
	}
	habit.LastCompleted = today

	awarded := clamp(habit.PointsPerDay, constants.HabitPointsMin, constants.HabitPointsMax)
	e.award(awarded, fmt.Sprintf("Habit: %s", habit.Title))

	return HabitResult{Habit: *habit, Awarded: awarded, Applied: true}, e.persist()
}

// isNextDay reports whether next is exactly one calendar day after prev.
// Unparsable dates report false, which lands on the reset branch.
func isNextDay(prev, next string) bool {
	p, err := time.Parse(constants.DateFormat, prev)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Format(constants.DateFormat) == next
}

// Habits returns a copy of all habits.
func (e *Engine) Habits() []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Habit, len(e.habits))
	copy(out, e.habits)
	return out
}
