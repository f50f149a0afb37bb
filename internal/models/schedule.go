package models

// SlotProposal maps a task to a suggested start slot. Proposals come from
// the assistant planner (or the local fallback scheduler) and must be
// filtered against the live task registry before adoption.
type SlotProposal struct {
	TaskID    string `json:"taskId"`
	StartTime string `json:"startTime"` // HH:00 format
}
