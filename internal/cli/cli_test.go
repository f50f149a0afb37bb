package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/unrot/unrot/internal/assistant"
	"github.com/unrot/unrot/internal/models"
	"github.com/unrot/unrot/internal/scheduler"
	"github.com/unrot/unrot/internal/storage"
)

type stubAdapter struct {
	proposals []models.SlotProposal
	err       error
}

func (s *stubAdapter) Advice(_ context.Context, _ assistant.WorkspaceStats) string {
	return "stub advice"
}

func (s *stubAdapter) Chat(_ context.Context, _ string, _ []models.ChatMessage) string {
	return "stub reply"
}

func (s *stubAdapter) ProposeSchedule(_ context.Context, _ []assistant.PendingTask, _ string) ([]models.SlotProposal, error) {
	return s.proposals, s.err
}

func setupTestContext(t *testing.T) (*Context, func()) {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "unrot.json")

	store := storage.NewJSONStore(storePath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	ctx := &Context{
		Store:     store,
		Assistant: &stubAdapter{},
		Scheduler: scheduler.New(),
		Log:       zerolog.Nop(),
	}

	cleanup := func() {
		store.Close()
	}

	return ctx, cleanup
}

func TestTaskAddAndDone(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	add := &TaskAddCmd{Title: "Write report", Priority: "high", Points: 3, Difficulty: 1}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	eng, err := ctx.engine()
	if err != nil {
		t.Fatalf("failed to load engine: %v", err)
	}
	tasks := eng.PendingTasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 pending task, got %d", len(tasks))
	}

	done := &TaskDoneCmd{ID: tasks[0].ID}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("task done failed: %v", err)
	}

	eng, err = ctx.engine()
	if err != nil {
		t.Fatalf("failed to reload engine: %v", err)
	}
	if got := eng.Balance(); got != 3 {
		t.Errorf("expected balance 3 after completion, got %d", got)
	}

	// Second completion is a no-op, not an error
	if err := done.Run(ctx); err != nil {
		t.Fatalf("repeated task done failed: %v", err)
	}
	eng, _ = ctx.engine()
	if got := eng.Balance(); got != 3 {
		t.Errorf("expected balance unchanged at 3, got %d", got)
	}
}

func TestTaskAddValidate(t *testing.T) {
	cmd := &TaskAddCmd{Title: "x", Priority: "urgent"}
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for unknown priority")
	}

	cmd = &TaskAddCmd{Title: "x", Priority: "low", Due: "not-a-date"}
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for malformed due date")
	}

	cmd = &TaskAddCmd{Title: "x", Priority: "low", Due: "2026-09-01"}
	if err := cmd.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestHabitDoneAntiSpam(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	add := &HabitAddCmd{Title: "Stretch", Points: 2}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("habit add failed: %v", err)
	}

	eng, _ := ctx.engine()
	habits := eng.Habits()
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}

	done := &HabitDoneCmd{ID: habits[0].ID}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("habit done failed: %v", err)
	}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("repeated habit done failed: %v", err)
	}

	eng, _ = ctx.engine()
	if got := eng.Balance(); got != 2 {
		t.Errorf("expected a single daily credit of 2, got balance %d", got)
	}
}

func TestRedeemInsufficientFunds(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	eng, _ := ctx.engine()
	rewards := eng.Rewards()
	if len(rewards) == 0 {
		t.Fatal("expected seeded reward catalog")
	}

	cmd := &RedeemCmd{ID: rewards[0].ID}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("redeem should not error on insufficient funds: %v", err)
	}

	eng, _ = ctx.engine()
	if got := eng.Balance(); got != 0 {
		t.Errorf("balance should be untouched, got %d", got)
	}
}

func TestScheduleCmdFallsBackToLocalPlanner(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	add := &TaskAddCmd{Title: "Plan sprint", Priority: "high", Points: 2, Difficulty: 1}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	ctx.Assistant = &stubAdapter{err: context.DeadlineExceeded}

	cmd := &ScheduleCmd{Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("schedule with fallback failed: %v", err)
	}

	eng, _ := ctx.engine()
	tasks := eng.PendingTasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 pending task, got %d", len(tasks))
	}
	if tasks[0].StartTime == "" {
		t.Error("expected adopted schedule to set a start time")
	}
}

func TestScheduleCmdFiltersUnknownIDs(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	add := &TaskAddCmd{Title: "Review PR", Priority: "medium", Points: 1, Difficulty: 1}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	eng, _ := ctx.engine()
	id := eng.PendingTasks()[0].ID

	ctx.Assistant = &stubAdapter{proposals: []models.SlotProposal{
		{TaskID: id, StartTime: "09:00"},
		{TaskID: "ghost", StartTime: "10:00"},
		{TaskID: id, StartTime: "25:00"},
	}}

	cmd := &ScheduleCmd{Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	eng, _ = ctx.engine()
	task, ok := eng.Task(id)
	if !ok {
		t.Fatal("task disappeared")
	}
	if task.StartTime != "09:00" {
		t.Errorf("expected valid slot 09:00 adopted, got %q", task.StartTime)
	}
}

func TestReferralAppliesOnce(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	cmd := &ReferralCmd{Code: "FRIEND42"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("referral failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("repeated referral should not error: %v", err)
	}

	eng, _ := ctx.engine()
	if got := eng.Balance(); got != 50 {
		t.Errorf("expected a single referral bonus of 50, got %d", got)
	}
}

func TestChatCmdRecordsHistory(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	cmd := &ChatCmd{Message: []string{"how", "am", "I", "doing?"}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("chat failed: %v", err)
	}

	eng, _ := ctx.engine()
	history := eng.ChatHistory()
	if len(history) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(history))
	}
	if history[0].Role != models.ChatRoleUser || history[1].Role != models.ChatRoleAssistant {
		t.Errorf("unexpected roles: %s, %s", history[0].Role, history[1].Role)
	}
	if history[1].Content != "stub reply" {
		t.Errorf("expected stub reply recorded, got %q", history[1].Content)
	}
}

func TestDebugDumpTaskCmd(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	missing := &DebugDumpTaskCmd{ID: "nope"}
	if err := missing.Run(ctx); err == nil {
		t.Error("expected error for unknown task id")
	}

	add := &TaskAddCmd{Title: "Dump me", Priority: "low", Points: 1, Difficulty: 1}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}
	eng, _ := ctx.engine()
	id := eng.Tasks()[0].ID

	cmd := &DebugDumpTaskCmd{ID: id}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("debug dump-task failed: %v", err)
	}
}

func TestDoctorCmdHealthyWorkspace(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	add := &TaskAddCmd{Title: "Check me", Priority: "low", Points: 1, Difficulty: 1}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("doctor on a healthy workspace failed: %v", err)
	}
}

func TestDoctorCmdMissingStore(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "never-initialized.json")
	ctx := &Context{
		Store:     storage.NewJSONStore(storePath),
		Assistant: &stubAdapter{},
		Scheduler: scheduler.New(),
		Log:       zerolog.Nop(),
	}

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected doctor to fail when the store file is missing")
	}
}

func TestValidateCmdCleanWorkspace(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	cmd := &ValidateCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("validate on a fresh workspace failed: %v", err)
	}
}
