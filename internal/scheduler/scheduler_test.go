package scheduler

import (
	"testing"

	"github.com/unrot/unrot/internal/models"
)

func TestProposeOrdersByPriority(t *testing.T) {
	s := New()

	tasks := []models.Task{
		{ID: "low", Title: "Low", Priority: models.PriorityLow, Status: models.TaskStatusTodo},
		{ID: "high", Title: "High", Priority: models.PriorityHigh, Status: models.TaskStatusTodo},
		{ID: "med", Title: "Med", Priority: models.PriorityMedium, Status: models.TaskStatusTodo},
	}

	proposals := s.Propose(tasks)
	if len(proposals) != 3 {
		t.Fatalf("expected 3 proposals, got %d", len(proposals))
	}

	wantOrder := []string{"high", "med", "low"}
	wantSlots := []string{"07:00", "08:00", "09:00"}
	for i := range proposals {
		if proposals[i].TaskID != wantOrder[i] {
			t.Errorf("position %d: expected task %s, got %s", i, wantOrder[i], proposals[i].TaskID)
		}
		if proposals[i].StartTime != wantSlots[i] {
			t.Errorf("position %d: expected slot %s, got %s", i, wantSlots[i], proposals[i].StartTime)
		}
	}
}

func TestProposeSkipsDoneTasks(t *testing.T) {
	s := New()

	tasks := []models.Task{
		{ID: "done", Title: "Done", Priority: models.PriorityHigh, Status: models.TaskStatusDone},
		{ID: "open", Title: "Open", Priority: models.PriorityLow, Status: models.TaskStatusTodo},
	}

	proposals := s.Propose(tasks)
	if len(proposals) != 1 || proposals[0].TaskID != "open" {
		t.Errorf("expected only the open task proposed, got %+v", proposals)
	}
}

func TestProposeEarlierDueDateFirst(t *testing.T) {
	s := New()

	tasks := []models.Task{
		{ID: "later", Title: "Later", Priority: models.PriorityMedium, Status: models.TaskStatusTodo, DueDate: "2026-09-10"},
		{ID: "sooner", Title: "Sooner", Priority: models.PriorityMedium, Status: models.TaskStatusTodo, DueDate: "2026-09-02"},
		{ID: "nodate", Title: "NoDate", Priority: models.PriorityMedium, Status: models.TaskStatusTodo},
	}

	proposals := s.Propose(tasks)
	want := []string{"sooner", "later", "nodate"}
	for i, id := range want {
		if proposals[i].TaskID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, proposals[i].TaskID)
		}
	}
}

func TestProposeRespectsWindowCapacity(t *testing.T) {
	s := New()

	var tasks []models.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, models.Task{
			ID:       string(rune('a' + i)),
			Title:    string(rune('a' + i)),
			Priority: models.PriorityMedium,
			Status:   models.TaskStatusTodo,
		})
	}

	proposals := s.Propose(tasks)
	if len(proposals) != 15 {
		t.Fatalf("expected 15 proposals for the 07:00-21:00 window, got %d", len(proposals))
	}
	if proposals[0].StartTime != "07:00" {
		t.Errorf("expected first slot 07:00, got %s", proposals[0].StartTime)
	}
	if proposals[14].StartTime != "21:00" {
		t.Errorf("expected last slot 21:00, got %s", proposals[14].StartTime)
	}
}

func TestProposeEmptyInput(t *testing.T) {
	if got := New().Propose(nil); len(got) != 0 {
		t.Errorf("expected no proposals, got %+v", got)
	}
}
