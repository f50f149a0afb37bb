package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/unrot/unrot/internal/assistant"
	"github.com/unrot/unrot/internal/cli"
	"github.com/unrot/unrot/internal/config"
	"github.com/unrot/unrot/internal/scheduler"
	"github.com/unrot/unrot/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the JSON document store, anything else SQLite." type:"path" default:"~/.config/unrot/unrot.db"`
	Verbose bool   `help:"Enable debug logging." short:"v"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize the unrot workspace."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the workspace for conflicts."`
	Points   cli.PointsCmd   `cmd:"" help:"Show the current point balance."`
	History  cli.HistoryCmd  `cmd:"" help:"Show the point transaction history."`
	Schedule cli.ScheduleCmd `cmd:"" help:"Propose start times for pending tasks."`
	Advice   cli.AdviceCmd   `cmd:"" help:"Get a quick nudge from the assistant."`
	Chat     cli.ChatCmd     `cmd:"" help:"Chat with the assistant."`
	Referral cli.ReferralCmd `cmd:"" help:"Apply a referral code."`
	Redeem   cli.RedeemCmd   `cmd:"" help:"Redeem a reward."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
	Task     struct {
		Add        cli.TaskAddCmd        `cmd:"" help:"Add a new task."`
		List       cli.TaskListCmd       `cmd:"" help:"List all tasks."`
		Done       cli.TaskDoneCmd       `cmd:"" help:"Complete a task and collect its points."`
		Reschedule cli.TaskRescheduleCmd `cmd:"" help:"Move a task to a new date or slot."`
	} `cmd:"" help:"Manage tasks."`
	Habit struct {
		Add  cli.HabitAddCmd  `cmd:"" help:"Add a new habit."`
		List cli.HabitListCmd `cmd:"" help:"List all habits."`
		Done cli.HabitDoneCmd `cmd:"" help:"Complete a habit for today."`
	} `cmd:"" help:"Manage habits."`
	Reward struct {
		Add  cli.RewardAddCmd  `cmd:"" help:"Add a reward to the catalog."`
		List cli.RewardListCmd `cmd:"" help:"List the reward catalog."`
	} `cmd:"" help:"Manage the reward catalog."`
	Category struct {
		Add  cli.CategoryAddCmd  `cmd:"" help:"Add a category."`
		List cli.CategoryListCmd `cmd:"" help:"List categories."`
	} `cmd:"" help:"Manage categories."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage workspace backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("unrot"),
		kong.Description("Points-driven personal workspace: tasks, habits, and rewards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	level := zerolog.WarnLevel
	if CLI.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	// Storage type follows the file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	cfg := config.Load()

	appCtx := &cli.Context{
		Store:     store,
		Assistant: assistant.NewClient(cfg, log),
		Scheduler: scheduler.New(),
		Log:       log,
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("failed to close store")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
