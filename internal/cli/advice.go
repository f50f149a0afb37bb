package cli

import (
	"context"
	"fmt"

	"github.com/unrot/unrot/internal/assistant"
)

type AdviceCmd struct{}

func (c *AdviceCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	stats := assistant.WorkspaceStats{
		Points:       eng.Balance(),
		PendingTasks: len(eng.PendingTasks()),
		Habits:       len(eng.Habits()),
	}
	fmt.Println(ctx.Assistant.Advice(context.Background(), stats))
	return nil
}
