package cli

import (
	"fmt"

	"github.com/unrot/unrot/internal/economy"
)

type HabitAddCmd struct {
	Title  string `arg:"" help:"Habit title."`
	Points int    `short:"P" help:"Points per day (clamped to 1-2)." default:"1"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	habit, err := eng.AddHabit(economy.HabitDraft{
		Title:        c.Title,
		PointsPerDay: c.Points,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s, %d pts/day)\n", habit.Title, habit.ID, habit.PointsPerDay)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	habits := eng.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits. Add one with 'unrot habit add'.")
		return nil
	}

	today := getCurrentDate()
	for _, h := range habits {
		marker := " "
		if h.LastCompleted == today {
			marker = "✓"
		}
		fmt.Printf("%s %-30s streak %d  %d pts/day\n", marker, h.Title, h.Streak, h.PointsPerDay)
		fmt.Printf("    ID: %s\n", h.ID)
	}
	return nil
}

type HabitDoneCmd struct {
	ID string `arg:"" help:"Habit identifier."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	res, err := eng.CompleteHabit(c.ID, getCurrentDate())
	if err != nil {
		return err
	}
	if !res.Applied {
		fmt.Println("Nothing to do: habit not found or already completed today.")
		return nil
	}

	fmt.Printf("Completed %q, earned %d points. Streak: %d days. Balance: %d\n",
		res.Habit.Title, res.Awarded, res.Habit.Streak, eng.Balance())
	return nil
}
