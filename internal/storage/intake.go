// ABOUTME: Intake event operations scoped by a local-day window.
// ABOUTME: Append, daily sum, recent history, and last-entry undo.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/waterlog/internal/models"
	"github.com/harperreed/waterlog/internal/window"
)

// AddIntake appends an intake event recorded at the given instant.
// Precondition: amountML > 0. Range validation is the caller's
// responsibility; this layer stores what it is given.
func (d *DB) AddIntake(userID int64, amountML int, now time.Time) (*models.IntakeEvent, error) {
	query := `
		INSERT INTO intake_events (user_id, amount_ml, created_at)
		VALUES (?, ?, ?)
	`
	res, err := d.db.Exec(query, userID, amountML, timeText(now))
	if err != nil {
		return nil, wrapErr("add intake", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, wrapErr("add intake", err)
	}
	return &models.IntakeEvent{
		ID:        id,
		UserID:    userID,
		AmountML:  amountML,
		CreatedAt: now.UTC().Truncate(time.Second),
	}, nil
}

// SumIntake returns the total milliliters recorded for the user inside
// the window, 0 when empty.
func (d *DB) SumIntake(userID int64, w window.Window) (int, error) {
	query := `
		SELECT COALESCE(SUM(amount_ml), 0)
		FROM intake_events
		WHERE user_id = ? AND created_at >= ? AND created_at < ?
	`
	var total int
	err := d.db.QueryRow(query, userID, timeText(w.Start), timeText(w.End)).Scan(&total)
	if err != nil {
		return 0, wrapErr("sum intake", err)
	}
	return total, nil
}

// ListRecentIntake returns the amounts of the n most recent events
// inside the window, most recent first. Equal timestamps are broken by
// higher id first, an insertion-order proxy.
func (d *DB) ListRecentIntake(userID int64, w window.Window, n int) ([]int, error) {
	query := `
		SELECT amount_ml
		FROM intake_events
		WHERE user_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := d.db.Query(query, userID, timeText(w.Start), timeText(w.End), n)
	if err != nil {
		return nil, wrapErr("list recent intake", err)
	}
	defer rows.Close()

	var amounts []int
	for rows.Next() {
		var ml int
		if err := rows.Scan(&ml); err != nil {
			return nil, wrapErr("list recent intake", err)
		}
		amounts = append(amounts, ml)
	}
	return amounts, rows.Err()
}

// DeleteLastIntake removes the single most recent event inside the
// window (created_at DESC, then id DESC) and returns its amount.
// Returns (0, false, nil) without mutating anything when the window is
// empty. The delete-with-subquery runs as one statement, so exactly one
// row goes away even when several events share a timestamp.
func (d *DB) DeleteLastIntake(userID int64, w window.Window) (int, bool, error) {
	query := `
		DELETE FROM intake_events
		WHERE id = (
			SELECT id FROM intake_events
			WHERE user_id = ? AND created_at >= ? AND created_at < ?
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		)
		RETURNING amount_ml
	`
	var amount int
	err := d.db.QueryRow(query, userID, timeText(w.Start), timeText(w.End)).Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, wrapErr("delete last intake", err)
	}
	return amount, true, nil
}
