// ABOUTME: Store interface for water intake persistence.
// ABOUTME: Defines the contract consumed by the tracker service.
package storage

import (
	"time"

	"github.com/harperreed/waterlog/internal/models"
	"github.com/harperreed/waterlog/internal/window"
)

// Store defines the persistence interface for the tracker.
// This interface allows swapping implementations (e.g., for testing).
type Store interface {
	// User operations
	EnsureUser(externalID string, now time.Time) (*models.User, error)
	GetUserByExternalID(externalID string) (*models.User, error)

	// Settings operations
	GetSettings(userID int64) (*models.Settings, error)
	UpsertSettings(userID int64, dailyGoalML int, tz string, now time.Time) error

	// Intake operations
	AddIntake(userID int64, amountML int, now time.Time) (*models.IntakeEvent, error)
	SumIntake(userID int64, w window.Window) (int, error)
	ListRecentIntake(userID int64, w window.Window, n int) ([]int, error)
	DeleteLastIntake(userID int64, w window.Window) (int, bool, error)

	// Export
	GetAllData() (*ExportData, error)

	// Lifecycle
	Close() error
}
