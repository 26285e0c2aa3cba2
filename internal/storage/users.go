// ABOUTME: User row operations for SQLite storage.
// ABOUTME: Race-safe first-contact creation keyed by external ID.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/waterlog/internal/models"
)

// EnsureUser returns the user for externalID, creating it with the
// given creation instant on first contact. Concurrent first contacts
// for the same externalID resolve to the same row: the insert is a
// single ON CONFLICT DO NOTHING statement followed by a read-back, so
// a lost race returns the pre-existing row instead of erroring.
func (d *DB) EnsureUser(externalID string, now time.Time) (*models.User, error) {
	query := `
		INSERT INTO users (external_id, created_at)
		VALUES (?, ?)
		ON CONFLICT(external_id) DO NOTHING
	`
	if _, err := d.db.Exec(query, externalID, timeText(now)); err != nil {
		return nil, wrapErr("ensure user", err)
	}

	u, err := d.GetUserByExternalID(externalID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("ensure user: %w: row missing after insert", ErrUnavailable)
	}
	return u, nil
}

// GetUserByExternalID retrieves a user by external ID.
// Returns (nil, nil) if the external ID is unknown.
func (d *DB) GetUserByExternalID(externalID string) (*models.User, error) {
	query := `
		SELECT id, external_id, created_at
		FROM users
		WHERE external_id = ?
	`
	var u models.User
	var createdAt string
	err := d.db.QueryRow(query, externalID).Scan(&u.ID, &u.ExternalID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get user", err)
	}
	u.CreatedAt = parseTimeText(createdAt)
	return &u, nil
}
