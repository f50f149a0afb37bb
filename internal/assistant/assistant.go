// Package assistant talks to the external text-generation service behind
// the advice, chat, and scheduling features. Every remote failure degrades
// locally: advice and chat fall back to static lines, scheduling falls back
// to an empty proposal list so callers can use the local scheduler instead.
// Nothing in this package mutates core state.
package assistant

import (
	"context"

	"github.com/unrot/unrot/internal/models"
)

// PendingTask is the trimmed task view sent to the planner.
type PendingTask struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// WorkspaceStats feeds the ambient advice prompt.
type WorkspaceStats struct {
	Points       int
	PendingTasks int
	Habits       int
}

// Adapter is the collaborator contract for the AI service.
type Adapter interface {
	// Advice returns one encouraging line for the current workspace
	// status. Never fails; degraded responses are static text.
	Advice(ctx context.Context, stats WorkspaceStats) string

	// Chat answers a message given the prior history. Never fails.
	Chat(ctx context.Context, message string, history []models.ChatMessage) string

	// ProposeSchedule asks for start slots for the given tasks. The
	// returned proposals are unfiltered; callers must run them through
	// FilterProposals before offering adoption.
	ProposeSchedule(ctx context.Context, tasks []PendingTask, intent string) ([]models.SlotProposal, error)
}

const (
	adviceFallback = "Ready to organize your workspace for the day?"
	chatFallback   = "I'm having trouble connecting right now. Let's focus on your tasks."
)
