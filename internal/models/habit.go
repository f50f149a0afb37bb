package models

type Frequency string

const (
	FrequencyDaily Frequency = "daily"
)

// Habit is a recurring practice that can be credited at most once per
// calendar day. LastCompleted holds the day of the most recent credited
// completion; an empty string means the habit has never been completed.
type Habit struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Streak        int       `json:"streak"`
	LastCompleted string    `json:"last_completed,omitempty"` // YYYY-MM-DD format
	PointsPerDay  int       `json:"points_per_day"`
	Frequency     Frequency `json:"frequency"`
}
