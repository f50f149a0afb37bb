package cli

import (
	"fmt"

	"github.com/unrot/unrot/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	result := validation.New().ValidateSnapshot(snap)
	fmt.Println(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("snapshot has %d conflict(s)", len(result.Conflicts))
	}
	return nil
}
