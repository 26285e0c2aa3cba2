// ABOUTME: Export functionality for water intake data.
// ABOUTME: Full backup dump of users, settings, and events as JSON or YAML.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/waterlog/internal/models"
)

// ExportData represents the full export format for intake data.
type ExportData struct {
	Version    string        `json:"version" yaml:"version"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Tool       string        `json:"tool" yaml:"tool"`
	Users      []*UserExport `json:"users" yaml:"users"`
}

// UserExport bundles one user with its settings and intake history.
type UserExport struct {
	User     models.User          `json:"user" yaml:"user"`
	Settings *models.Settings     `json:"settings,omitempty" yaml:"settings,omitempty"`
	Events   []models.IntakeEvent `json:"events" yaml:"events"`
}

// GetAllData retrieves all data for export, ordered by user id and
// event insertion order.
func (d *DB) GetAllData() (*ExportData, error) {
	rows, err := d.db.Query(`SELECT id, external_id, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, wrapErr("export users", err)
	}
	defer rows.Close()

	var users []*UserExport
	for rows.Next() {
		var u models.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.ExternalID, &createdAt); err != nil {
			return nil, wrapErr("export users", err)
		}
		u.CreatedAt = parseTimeText(createdAt)
		users = append(users, &UserExport{User: u})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("export users", err)
	}

	for _, ue := range users {
		settings, err := d.GetSettings(ue.User.ID)
		if err != nil {
			return nil, fmt.Errorf("export settings: %w", err)
		}
		ue.Settings = settings

		events, err := d.listEvents(ue.User.ID)
		if err != nil {
			return nil, err
		}
		ue.Events = events
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Tool:       "waterlog",
		Users:      users,
	}, nil
}

// listEvents returns every intake event for a user in insertion order.
func (d *DB) listEvents(userID int64) ([]models.IntakeEvent, error) {
	query := `
		SELECT id, user_id, amount_ml, created_at
		FROM intake_events
		WHERE user_id = ?
		ORDER BY id
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, wrapErr("export events", err)
	}
	defer rows.Close()

	var events []models.IntakeEvent
	for rows.Next() {
		var e models.IntakeEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.AmountML, &createdAt); err != nil {
			return nil, wrapErr("export events", err)
		}
		e.CreatedAt = parseTimeText(createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}
