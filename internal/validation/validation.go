// Package validation checks a loaded snapshot for integrity problems the
// economy engine assumes never happen: a balance out of sync with its own
// ledger, point values outside their bounds, malformed dates or slots, and
// duplicate identifiers. It is read-only; the doctor and validate commands
// report conflicts, they do not repair them.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

type ConflictType string

const (
	ConflictBalanceMismatch  ConflictType = "balance_mismatch"
	ConflictBadTransaction   ConflictType = "bad_transaction"
	ConflictPointsOutOfRange ConflictType = "points_out_of_range"
	ConflictUnknownCategory  ConflictType = "unknown_category"
	ConflictInvalidDate      ConflictType = "invalid_date"
	ConflictInvalidSlot      ConflictType = "invalid_slot"
	ConflictDuplicateID      ConflictType = "duplicate_id"
)

type Conflict struct {
	Type    ConflictType
	ID      string
	Message string
}

type Result struct {
	Conflicts []Conflict
}

func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport renders the conflicts for terminal output.
func (r Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "  [%s] %s\n", c.Type, c.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateSnapshot runs every check against the full document.
func (v *Validator) ValidateSnapshot(snap models.Snapshot) Result {
	var result Result

	result.Conflicts = append(result.Conflicts, checkLedger(snap)...)
	result.Conflicts = append(result.Conflicts, checkTasks(snap)...)
	result.Conflicts = append(result.Conflicts, checkHabits(snap)...)
	result.Conflicts = append(result.Conflicts, checkDuplicateIDs(snap)...)

	return result
}

func checkLedger(snap models.Snapshot) []Conflict {
	var conflicts []Conflict

	sum := 0
	for _, tx := range snap.History {
		switch tx.Kind {
		case models.TransactionEarned:
			sum += tx.Amount
		case models.TransactionSpent:
			sum -= tx.Amount
		default:
			conflicts = append(conflicts, Conflict{
				Type:    ConflictBadTransaction,
				ID:      tx.ID,
				Message: fmt.Sprintf("unknown transaction kind %q", tx.Kind),
			})
		}
		if tx.Amount <= 0 {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictBadTransaction,
				ID:      tx.ID,
				Message: fmt.Sprintf("transaction amount must be positive, got %d", tx.Amount),
			})
		}
	}

	if snap.Points != sum {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictBalanceMismatch,
			Message: fmt.Sprintf("points %d do not match ledger sum %d", snap.Points, sum),
		})
	}
	return conflicts
}

func checkTasks(snap models.Snapshot) []Conflict {
	var conflicts []Conflict

	categories := make(map[string]bool, len(snap.Categories))
	for _, c := range snap.Categories {
		categories[c] = true
	}

	for _, t := range snap.Tasks {
		if t.Points < constants.TaskPointsMin || t.Points > constants.TaskPointsMax {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictPointsOutOfRange,
				ID:      t.ID,
				Message: fmt.Sprintf("task %q points %d outside [%d,%d]", t.Title, t.Points, constants.TaskPointsMin, constants.TaskPointsMax),
			})
		}
		if t.Category != "" && !categories[t.Category] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictUnknownCategory,
				ID:      t.ID,
				Message: fmt.Sprintf("task %q references unknown category %q", t.Title, t.Category),
			})
		}
		if t.DueDate != "" && !validDate(t.DueDate) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidDate,
				ID:      t.ID,
				Message: fmt.Sprintf("task %q has invalid due date %q", t.Title, t.DueDate),
			})
		}
		if t.StartTime != "" && !validTime(t.StartTime) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidSlot,
				ID:      t.ID,
				Message: fmt.Sprintf("task %q has invalid start time %q", t.Title, t.StartTime),
			})
		}
	}
	return conflicts
}

func checkHabits(snap models.Snapshot) []Conflict {
	var conflicts []Conflict

	for _, h := range snap.Habits {
		if h.PointsPerDay < constants.HabitPointsMin || h.PointsPerDay > constants.HabitPointsMax {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictPointsOutOfRange,
				ID:      h.ID,
				Message: fmt.Sprintf("habit %q pointsPerDay %d outside [%d,%d]", h.Title, h.PointsPerDay, constants.HabitPointsMin, constants.HabitPointsMax),
			})
		}
		if h.Streak < 0 {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictPointsOutOfRange,
				ID:      h.ID,
				Message: fmt.Sprintf("habit %q has negative streak %d", h.Title, h.Streak),
			})
		}
		if h.LastCompleted != "" && !validDate(h.LastCompleted) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidDate,
				ID:      h.ID,
				Message: fmt.Sprintf("habit %q has invalid completion date %q", h.Title, h.LastCompleted),
			})
		}
	}
	return conflicts
}

func checkDuplicateIDs(snap models.Snapshot) []Conflict {
	var conflicts []Conflict
	seen := make(map[string]string)

	note := func(id, kind string) {
		if id == "" {
			return
		}
		if prev, ok := seen[id]; ok {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDuplicateID,
				ID:      id,
				Message: fmt.Sprintf("id %q used by both %s and %s", id, prev, kind),
			})
			return
		}
		seen[id] = kind
	}

	for _, t := range snap.Tasks {
		note(t.ID, "task")
	}
	for _, h := range snap.Habits {
		note(h.ID, "habit")
	}
	for _, r := range snap.Rewards {
		note(r.ID, "reward")
	}
	for _, tx := range snap.History {
		note(tx.ID, "transaction")
	}
	return conflicts
}

func validDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func validTime(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}
