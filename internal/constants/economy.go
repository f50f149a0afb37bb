package constants

const (
	// Point bounds for earning items. Values outside these ranges are
	// clamped on creation and capped again at completion time.
	TaskPointsMin  = 1
	TaskPointsMax  = 5
	HabitPointsMin = 1
	HabitPointsMax = 2

	// RewardCostFloor is the minimum cost a reward may be created with.
	RewardCostFloor = 50

	// ReferralBonus is the fixed one-time credit for applying a referral code.
	ReferralBonus = 50
)

const (
	// Schedule proposals must land on whole-hour slots inside this window.
	ScheduleDayStart = "07:00"
	ScheduleDayEnd   = "21:00"

	// ScheduleMaxTasks caps how many pending tasks are sent to the planner.
	ScheduleMaxTasks = 15
)

const (
	// SnapshotKey is the fixed identifier the SQLite store keeps the
	// workspace document under. There is no schema versioning beyond it.
	SnapshotKey = "workspace"

	// SnapshotVersion is written into every serialized document.
	SnapshotVersion = 1
)

const (
	// DateFormat is the calendar-date layout used for due dates and habit
	// completion gating. Streak logic compares these strings, never
	// timestamps, so time-of-day and timezone cannot skew day boundaries.
	DateFormat = "2006-01-02"

	// SlotFormat is the layout for task start-time slots ("HH:00").
	SlotFormat = "15:04"
)
