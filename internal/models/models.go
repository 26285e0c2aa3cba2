// ABOUTME: Core data records for the water intake tracker.
// ABOUTME: Defines User, Settings, IntakeEvent, and goal bounds.
package models

import "time"

// Daily goal bounds in milliliters. Goals outside this range are clamped.
const (
	MinDailyGoalML     = 200
	MaxDailyGoalML     = 10000
	DefaultDailyGoalML = 2000
)

// User is a tracked person, identified by an opaque external ID
// supplied by the front-end transport. Immutable after creation.
type User struct {
	ID         int64     `json:"id" yaml:"id"`
	ExternalID string    `json:"external_id" yaml:"external_id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Settings holds per-user preferences. Exactly one row per user
// after first profile access.
type Settings struct {
	UserID      int64     `json:"user_id" yaml:"user_id"`
	DailyGoalML int       `json:"daily_goal_ml" yaml:"daily_goal_ml"`
	Timezone    string    `json:"timezone" yaml:"timezone"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// IntakeEvent is a single recorded drink. Events are appended and
// individually deleted (undo), never updated. CreatedAt is always UTC.
type IntakeEvent struct {
	ID        int64     `json:"id" yaml:"id"`
	UserID    int64     `json:"user_id" yaml:"user_id"`
	AmountML  int       `json:"amount_ml" yaml:"amount_ml"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ClampGoal forces a goal into the allowed [MinDailyGoalML, MaxDailyGoalML] range.
func ClampGoal(goalML int) int {
	if goalML < MinDailyGoalML {
		return MinDailyGoalML
	}
	if goalML > MaxDailyGoalML {
		return MaxDailyGoalML
	}
	return goalML
}

// ValidAmount reports whether an intake amount is acceptable.
func ValidAmount(amountML int) bool {
	return amountML > 0
}
