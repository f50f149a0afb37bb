package cli

import (
	"context"
	"fmt"

	"github.com/unrot/unrot/internal/assistant"
	"github.com/unrot/unrot/internal/constants"
)

type ScheduleCmd struct {
	Intent string `short:"i" help:"Free-form note about how you want the day to go."`
	Yes    bool   `short:"y" help:"Adopt the proposed schedule without asking."`
}

func (c *ScheduleCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	pending := eng.PendingTasks()
	if len(pending) == 0 {
		fmt.Println("No pending tasks to schedule.")
		return nil
	}
	if len(pending) > constants.ScheduleMaxTasks {
		pending = pending[:constants.ScheduleMaxTasks]
	}

	trimmed := make([]assistant.PendingTask, 0, len(pending))
	for _, t := range pending {
		trimmed = append(trimmed, assistant.PendingTask{
			ID:       t.ID,
			Title:    t.Title,
			Category: t.Category,
		})
	}

	proposals, err := ctx.Assistant.ProposeSchedule(context.Background(), trimmed, c.Intent)
	if err != nil {
		ctx.Log.Debug().Err(err).Msg("remote planner unavailable, using local scheduler")
		proposals = ctx.Scheduler.Propose(eng.Tasks())
	}

	proposals = assistant.FilterProposals(proposals, eng.Tasks())
	if len(proposals) == 0 {
		fmt.Println("No usable schedule proposals.")
		return nil
	}

	fmt.Println("Proposed schedule:")
	for _, p := range proposals {
		task, ok := eng.Task(p.TaskID)
		if !ok {
			continue
		}
		fmt.Printf("  %s  %s\n", p.StartTime, task.Title)
	}

	if !c.Yes {
		fmt.Println("\nRe-run with --yes to adopt this schedule.")
		return nil
	}

	applied, err := eng.AdoptSchedule(proposals)
	if err != nil {
		return err
	}
	fmt.Printf("Adopted schedule for %d task(s).\n", applied)
	return nil
}
