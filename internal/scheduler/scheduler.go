// Package scheduler is the local fallback planner. When the assistant is
// unreachable it produces deterministic whole-hour proposals for pending
// tasks inside the same 07:00–21:00 window the assistant is asked for, so
// the schedule feature degrades instead of disappearing.
package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

var priorityRank = map[models.Priority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// Propose assigns one whole-hour slot per pending task: high priority
// first, then earlier due dates, then title for a stable order. Done tasks
// are skipped; tasks beyond the window's capacity stay unscheduled.
func (s *Scheduler) Propose(tasks []models.Task) []models.SlotProposal {
	var pending []models.Task
	for _, t := range tasks {
		if t.Status != models.TaskStatusDone {
			pending = append(pending, t)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		if priorityRank[pending[i].Priority] != priorityRank[pending[j].Priority] {
			return priorityRank[pending[i].Priority] < priorityRank[pending[j].Priority]
		}
		if pending[i].DueDate != pending[j].DueDate {
			// Empty due dates sort last.
			if pending[i].DueDate == "" {
				return false
			}
			if pending[j].DueDate == "" {
				return true
			}
			return pending[i].DueDate < pending[j].DueDate
		}
		return pending[i].Title < pending[j].Title
	})

	startHour := hourOf(constants.ScheduleDayStart)
	endHour := hourOf(constants.ScheduleDayEnd)

	var proposals []models.SlotProposal
	hour := startHour
	for _, t := range pending {
		if hour > endHour || len(proposals) >= constants.ScheduleMaxTasks {
			break
		}
		proposals = append(proposals, models.SlotProposal{
			TaskID:    t.ID,
			StartTime: fmt.Sprintf("%02d:00", hour),
		})
		hour++
	}
	return proposals
}

func hourOf(slot string) int {
	h, err := strconv.Atoi(strings.SplitN(slot, ":", 2)[0])
	if err != nil {
		return 0
	}
	return h
}
