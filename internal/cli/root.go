package cli

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/unrot/unrot/internal/assistant"
	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/economy"
	"github.com/unrot/unrot/internal/models"
	"github.com/unrot/unrot/internal/scheduler"
	"github.com/unrot/unrot/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Assistant assistant.Adapter
	Scheduler *scheduler.Scheduler
	Log       zerolog.Logger
}

// engine loads the snapshot and wires it to the store so every mutation is
// written back through the same provider.
func (ctx *Context) engine() (*economy.Engine, error) {
	snap, err := ctx.Store.Load()
	if err != nil {
		return nil, err
	}
	return economy.NewEngine(snap, ctx.Store), nil
}

func getCurrentDate() string {
	return time.Now().Format(constants.DateFormat)
}

func isValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func parsePriority(s string) (models.Priority, bool) {
	return models.ParsePriority(s)
}

func statusLabel(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusTodo:
		return "[ ]"
	case models.TaskStatusInProgress:
		return "[~]"
	case models.TaskStatusDone:
		return "[x]"
	default:
		return "[?]"
	}
}
