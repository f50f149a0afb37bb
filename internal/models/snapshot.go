package models

// Snapshot is the full serialized workspace document. The storage layer
// treats it as opaque: one document in, one document out, rewritten after
// every mutation. Points must always equal the signed sum of History;
// the economy engine maintains that invariant, not the store.
type Snapshot struct {
	Version      int                `json:"version"`
	Points       int                `json:"points"`
	History      []PointTransaction `json:"point_history"`
	Tasks        []Task             `json:"tasks"`
	Habits       []Habit            `json:"habits"`
	Rewards      []Reward           `json:"rewards"`
	Categories   []string           `json:"categories"`
	ReferralUsed bool               `json:"referral_used"`
	Chat         []ChatMessage      `json:"chat_history,omitempty"`
}
