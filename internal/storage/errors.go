// ABOUTME: Storage error kinds and sqlite error classification.
// ABOUTME: Separates constraint violations from general engine failures.
package storage

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrConstraint marks a uniqueness or foreign-key failure outside
	// the designed race-safe paths. Surfaced, never swallowed.
	ErrConstraint = errors.New("constraint violation")

	// ErrUnavailable marks any other persistence-engine failure
	// (connectivity, disk). Callers decide retry policy; this layer
	// never retries.
	ErrUnavailable = errors.New("storage unavailable")
)

// wrapErr classifies a driver error under one of the storage error
// kinds while preserving the underlying cause for logging.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var serr *sqlite.Error
	if errors.As(err, &serr) && serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w: %v", op, ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}
