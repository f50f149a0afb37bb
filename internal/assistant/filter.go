package assistant

import (
	"strconv"
	"strings"

	"github.com/unrot/unrot/internal/models"
)

// FilterProposals drops every proposal whose task id is not in the given
// registry view or whose slot is not a whole hour inside the scheduling
// window. Invalid proposals are silently dropped, never fatal; this is the
// defensive boundary between the planner and Engine.AdoptSchedule, which
// trusts its input.
func FilterProposals(proposals []models.SlotProposal, tasks []models.Task) []models.SlotProposal {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	var out []models.SlotProposal
	for _, p := range proposals {
		if !known[p.TaskID] {
			continue
		}
		if !validSlot(p.StartTime) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// validSlot reports whether s is "HH:00" within the 07:00–21:00 window.
func validSlot(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || parts[1] != "00" {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	return hour >= 7 && hour <= 21
}
