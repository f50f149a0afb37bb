package economy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

// TaskDraft carries user input for a new task. Point values outside [1,5]
// are clamped, never rejected.
type TaskDraft struct {
	Title       string
	Description string
	Priority    models.Priority
	Points      int
	Difficulty  int
	DueDate     string // YYYY-MM-DD format
	StartTime   string // HH:00 format
	Category    string
}

// TaskResult reports the outcome of a completion attempt. Applied is false
// for the no-op cases (unknown id, already done); those are not errors.
type TaskResult struct {
	Task    models.Task
	Awarded int
	Applied bool
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddTask creates a task from a draft. No ledger interaction happens at
// creation; points only pay out on completion.
func (e *Engine) AddTask(draft TaskDraft) (models.Task, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return models.Task{}, errors.New("task title is required")
	}

	priority := draft.Priority
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		priority = models.PriorityMedium
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task := models.Task{
		ID:          e.newID(),
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Priority:    priority,
		Status:      models.TaskStatusTodo,
		Difficulty:  draft.Difficulty,
		Points:      clamp(draft.Points, constants.TaskPointsMin, constants.TaskPointsMax),
		DueDate:     draft.DueDate,
		StartTime:   draft.StartTime,
		Category:    e.ensureCategoryLocked(draft.Category),
	}
	e.tasks = append(e.tasks, task)
	return task, e.persist()
}

// CompleteTask transitions a task to done and credits its point value,
// capped into [1,5] again in case the stored value was injected from
// outside. Completing an unknown or already-done task is a no-op, so the
// operation is idempotent and safe to retry.
func (e *Engine) CompleteTask(id string) (TaskResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.taskIndexLocked(id)
	if idx < 0 || e.tasks[idx].Status == models.TaskStatusDone {
		return TaskResult{}, nil
	}

	e.tasks[idx].Status = models.TaskStatusDone
	awarded := clamp(e.tasks[idx].Points, constants.TaskPointsMin, constants.TaskPointsMax)
	e.award(awarded, fmt.Sprintf("Task: %s", e.tasks[idx].Title))

	return TaskResult{Task: e.tasks[idx], Awarded: awarded, Applied: true}, e.persist()
}

// RescheduleTask updates a task's due date and start slot. Pure field
// update: no status change and no point interaction. Unknown ids are
// silently ignored.
func (e *Engine) RescheduleTask(id, dueDate, startTime string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.taskIndexLocked(id)
	if idx < 0 {
		return false, nil
	}
	e.tasks[idx].DueDate = dueDate
	e.tasks[idx].StartTime = startTime
	return true, e.persist()
}

// AdoptSchedule overwrites StartTime for every task referenced by a
// proposal. Proposals with unknown ids are skipped without error; callers
// are expected to have filtered against the live registry already (see
// assistant.FilterProposals), so no validation happens here.
func (e *Engine) AdoptSchedule(proposals []models.SlotProposal) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	byTask := make(map[string]string, len(proposals))
	for _, p := range proposals {
		byTask[p.TaskID] = p.StartTime
	}

	updated := 0
	for i := range e.tasks {
		if start, ok := byTask[e.tasks[i].ID]; ok {
			e.tasks[i].StartTime = start
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	return updated, e.persist()
}

// Tasks returns a copy of all tasks.
func (e *Engine) Tasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// PendingTasks returns the tasks that are not done yet.
func (e *Engine) PendingTasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.Task
	for _, t := range e.tasks {
		if t.Status != models.TaskStatusDone {
			out = append(out, t)
		}
	}
	return out
}

// Task looks up a single task by id.
func (e *Engine) Task(id string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := e.taskIndexLocked(id); idx >= 0 {
		return e.tasks[idx], true
	}
	return models.Task{}, false
}

func (e *Engine) taskIndexLocked(id string) int {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
