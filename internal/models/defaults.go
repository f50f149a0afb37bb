package models

import "github.com/unrot/unrot/internal/constants"

// DefaultSnapshot is the fallback state used when no document exists yet or
// an existing one cannot be parsed: empty tasks and habits, zero points, the
// seed reward catalog and the seed category list.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Version: constants.SnapshotVersion,
		Rewards: []Reward{
			{
				ID:          "r1",
				Title:       "Gaming Time (30 Min)",
				Cost:        15,
				Description: "Spend your points for guilt-free gaming.",
				Icon:        "🎮",
			},
			{
				ID:          "r2",
				Title:       "Coffee Treat",
				Cost:        10,
				Description: "A special brew reward.",
				Icon:        "☕",
			},
		},
		Categories: []string{"Work", "Health", "Design", "Finance", "Personal"},
	}
}
