package models

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps user input to a Priority. "med" is accepted as a
// shorthand for medium.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low":
		return PriorityLow, true
	case "medium", "med":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	default:
		return "", false
	}
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a one-shot item that pays out its point value exactly once,
// when it transitions to done.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	Difficulty  int        `json:"difficulty,omitempty"`
	Points      int        `json:"points"`
	DueDate     string     `json:"due_date,omitempty"`   // YYYY-MM-DD format
	StartTime   string     `json:"start_time,omitempty"` // HH:00 format
	Category    string     `json:"category,omitempty"`
}
