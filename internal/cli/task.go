package cli

import (
	"fmt"

	"github.com/unrot/unrot/internal/economy"
	"github.com/unrot/unrot/internal/models"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"D" help:"Longer description."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Points      int    `short:"P" help:"Point value (clamped to 1-5)." default:"1"`
	Difficulty  int    `short:"d" help:"Subjective difficulty." default:"1"`
	Due         string `help:"Due date (YYYY-MM-DD)."`
	Start       string `help:"Start slot (HH:00)."`
	Category    string `short:"c" help:"Category name (registered on first use)."`
}

func (c *TaskAddCmd) Validate() error {
	if _, ok := parsePriority(c.Priority); !ok {
		return fmt.Errorf("invalid priority: %s", c.Priority)
	}
	if c.Due != "" && !isValidDate(c.Due) {
		return fmt.Errorf("invalid due date, use YYYY-MM-DD: %s", c.Due)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	priority, _ := parsePriority(c.Priority)
	task, err := eng.AddTask(economy.TaskDraft{
		Title:       c.Title,
		Description: c.Description,
		Priority:    priority,
		Points:      c.Points,
		Difficulty:  c.Difficulty,
		DueDate:     c.Due,
		StartTime:   c.Start,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s, %d pts)\n", task.Title, task.ID, task.Points)
	return nil
}

type TaskListCmd struct {
	All bool `short:"a" help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	tasks := eng.Tasks()
	shown := 0
	for _, t := range tasks {
		if !c.All && t.Status == models.TaskStatusDone {
			continue
		}
		shown++
		line := fmt.Sprintf("%s %-30s %d pts  %s", statusLabel(t.Status), t.Title, t.Points, t.Priority)
		if t.Category != "" {
			line += "  #" + t.Category
		}
		if t.DueDate != "" {
			line += "  due " + t.DueDate
		}
		if t.StartTime != "" {
			line += "  @" + t.StartTime
		}
		fmt.Println(line)
		fmt.Printf("    ID: %s\n", t.ID)
	}

	if shown == 0 {
		fmt.Println("No tasks. Add one with 'unrot task add'.")
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task identifier."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	res, err := eng.CompleteTask(c.ID)
	if err != nil {
		return err
	}
	if !res.Applied {
		// Unknown id or already done: safe to retry, nothing changed.
		fmt.Println("Nothing to do: task not found or already completed.")
		return nil
	}

	fmt.Printf("Completed %q, earned %d points. Balance: %d\n", res.Task.Title, res.Awarded, eng.Balance())
	return nil
}

type TaskRescheduleCmd struct {
	ID    string `arg:"" help:"Task identifier."`
	Date  string `arg:"" help:"New due date (YYYY-MM-DD or 'today')."`
	Start string `arg:"" optional:"" help:"New start slot (HH:00)."`
}

func (c *TaskRescheduleCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "today" {
		date = getCurrentDate()
	}
	if !isValidDate(date) {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %s", c.Date)
	}

	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	ok, err := eng.RescheduleTask(c.ID, date, c.Start)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Task not found.")
		return nil
	}
	fmt.Printf("Rescheduled to %s", date)
	if c.Start != "" {
		fmt.Printf(" at %s", c.Start)
	}
	fmt.Println()
	return nil
}
