package validation

import (
	"testing"

	"github.com/unrot/unrot/internal/models"
)

func TestValidateSnapshot_CleanDefault(t *testing.T) {
	result := New().ValidateSnapshot(models.DefaultSnapshot())
	if result.HasConflicts() {
		t.Errorf("expected default snapshot to validate, got %+v", result.Conflicts)
	}
}

func TestValidateSnapshot_BalanceMismatch(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.Points = 99
	snap.History = []models.PointTransaction{
		{ID: "tx1", Amount: 10, Kind: models.TransactionEarned, Reason: "Task: A"},
	}

	result := New().ValidateSnapshot(snap)
	if !hasType(result, ConflictBalanceMismatch) {
		t.Errorf("expected balance mismatch conflict, got %+v", result.Conflicts)
	}
}

func TestValidateSnapshot_BadTransactions(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.History = []models.PointTransaction{
		{ID: "tx1", Amount: -5, Kind: models.TransactionEarned, Reason: "Task: A"},
		{ID: "tx2", Amount: 5, Kind: "refunded", Reason: "Task: B"},
	}
	// Matches the signed sum so only the per-transaction checks fire.
	snap.Points = -5

	result := New().ValidateSnapshot(snap)
	count := 0
	for _, c := range result.Conflicts {
		if c.Type == ConflictBadTransaction {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 bad-transaction conflicts, got %d: %+v", count, result.Conflicts)
	}
}

func TestValidateSnapshot_TaskConflicts(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.Tasks = []models.Task{
		{ID: "t1", Title: "TooMany", Points: 9, Status: models.TaskStatusTodo},
		{ID: "t2", Title: "BadCat", Points: 3, Category: "Ghost", Status: models.TaskStatusTodo},
		{ID: "t3", Title: "BadDate", Points: 3, DueDate: "01/09/2026", Status: models.TaskStatusTodo},
		{ID: "t4", Title: "BadSlot", Points: 3, StartTime: "9am", Status: models.TaskStatusTodo},
	}

	result := New().ValidateSnapshot(snap)
	for _, want := range []ConflictType{
		ConflictPointsOutOfRange,
		ConflictUnknownCategory,
		ConflictInvalidDate,
		ConflictInvalidSlot,
	} {
		if !hasType(result, want) {
			t.Errorf("expected conflict %s, got %+v", want, result.Conflicts)
		}
	}
}

func TestValidateSnapshot_HabitConflicts(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.Habits = []models.Habit{
		{ID: "h1", Title: "TooRich", PointsPerDay: 4},
		{ID: "h2", Title: "BadDate", PointsPerDay: 1, LastCompleted: "yesterday"},
	}

	result := New().ValidateSnapshot(snap)
	if !hasType(result, ConflictPointsOutOfRange) {
		t.Errorf("expected points-out-of-range conflict, got %+v", result.Conflicts)
	}
	if !hasType(result, ConflictInvalidDate) {
		t.Errorf("expected invalid-date conflict, got %+v", result.Conflicts)
	}
}

func TestValidateSnapshot_DuplicateIDs(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.Tasks = []models.Task{{ID: "x", Title: "Task", Points: 3}}
	snap.Habits = []models.Habit{{ID: "x", Title: "Habit", PointsPerDay: 1}}

	result := New().ValidateSnapshot(snap)
	if !hasType(result, ConflictDuplicateID) {
		t.Errorf("expected duplicate-id conflict, got %+v", result.Conflicts)
	}
}

func hasType(r Result, ct ConflictType) bool {
	for _, c := range r.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}
