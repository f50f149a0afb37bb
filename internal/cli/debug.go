package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	StorePath    *DebugStorePathCmd    `cmd:"" help:"Show store file path."`
	DumpSnapshot *DebugDumpSnapshotCmd `cmd:"" help:"Dump the full snapshot as JSON."`
	DumpTask     *DebugDumpTaskCmd     `cmd:"" help:"Dump task data as JSON."`
}

type DebugStorePathCmd struct{}

func (c *DebugStorePathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpSnapshotCmd struct{}

func (c *DebugDumpSnapshotCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpTaskCmd struct {
	ID string `arg:"" help:"ID of the task to dump."`
}

func (c *DebugDumpTaskCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	task, ok := eng.Task(c.ID)
	if !ok {
		return fmt.Errorf("no task found with id: %s", c.ID)
	}

	jsonBytes, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
