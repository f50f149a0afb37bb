package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/unrot/unrot/internal/constants"
)

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

func validatePoints(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("points must be a number")
	}
	return nil
}

func newTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title(fmt.Sprintf("Points (%d-%d)", constants.TaskPointsMin, constants.TaskPointsMax)).
				Description("Out-of-range values are clamped").
				Value(&fm.Points).
				Validate(validatePoints),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&fm.Priority),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD, optional").
				Value(&fm.DueDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Description("Optional").
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&fm.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title(fmt.Sprintf("Points per day (%d-%d)", constants.HabitPointsMin, constants.HabitPointsMax)).
				Description("Out-of-range values are clamped").
				Value(&fm.Points).
				Validate(validatePoints),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRewardForm(fm *RewardFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reward").
				Value(&fm.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Cost").
				Description(fmt.Sprintf("Minimum %d points", constants.RewardCostFloor)).
				Value(&fm.Cost).
				Validate(validatePoints),
			huh.NewInput().
				Title("Description").
				Description("Optional").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}
