// ABOUTME: Per-user settings operations for SQLite storage.
// ABOUTME: Atomic upsert keyed by the user_id uniqueness constraint.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/waterlog/internal/models"
)

// GetSettings retrieves the settings row for a user.
// Returns (nil, nil) if the user has no settings yet.
func (d *DB) GetSettings(userID int64) (*models.Settings, error) {
	query := `
		SELECT user_id, daily_goal_ml, timezone, updated_at
		FROM user_settings
		WHERE user_id = ?
	`
	var s models.Settings
	var updatedAt string
	err := d.db.QueryRow(query, userID).Scan(&s.UserID, &s.DailyGoalML, &s.Timezone, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get settings", err)
	}
	s.UpdatedAt = parseTimeText(updatedAt)
	return &s, nil
}

// UpsertSettings inserts or overwrites the settings row for a user as
// one atomic statement. No read-then-write race: concurrent callers
// resolve to last-writer-wins on updated_at.
func (d *DB) UpsertSettings(userID int64, dailyGoalML int, tz string, now time.Time) error {
	query := `
		INSERT INTO user_settings (user_id, daily_goal_ml, timezone, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id)
		DO UPDATE SET daily_goal_ml = excluded.daily_goal_ml,
		              timezone = excluded.timezone,
		              updated_at = excluded.updated_at
	`
	if _, err := d.db.Exec(query, userID, dailyGoalML, tz, timeText(now)); err != nil {
		return wrapErr("upsert settings", err)
	}
	return nil
}
