// ABOUTME: Tracker service layering profile and daily-intake operations.
// ABOUTME: One explicit "now" per request keeps window queries consistent.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/waterlog/internal/models"
	"github.com/harperreed/waterlog/internal/progress"
	"github.com/harperreed/waterlog/internal/storage"
	"github.com/harperreed/waterlog/internal/window"
)

// RecentLimit is how many trailing entries Stats reports.
const RecentLimit = 3

var (
	// ErrProfileInit indicates settings were still missing after the
	// defaults upsert. A storage contract violation: fatal for the
	// request, not retried.
	ErrProfileInit = errors.New("profile initialization failed")

	// ErrInvalidAmount rejects non-positive intake amounts before they
	// reach storage.
	ErrInvalidAmount = errors.New("intake amount must be positive")
)

// Service wires the store with configured defaults for new profiles.
type Service struct {
	store         storage.Store
	defaultGoalML int
	defaultTZ     string
}

// Progress is the aggregate state of one user's current local day.
// Plain data for callers to format; no UI concerns here.
type Progress struct {
	TotalML  int
	GoalML   int
	Percent  int
	Recent   []int
	Timezone string
}

// New creates a tracker service around the given store.
func New(store storage.Store, defaultGoalML int, defaultTZ string) *Service {
	if defaultGoalML == 0 {
		defaultGoalML = models.DefaultDailyGoalML
	}
	return &Service{
		store:         store,
		defaultGoalML: defaultGoalML,
		defaultTZ:     defaultTZ,
	}
}

// EnsureProfile resolves the user for externalID, creating the user and
// default settings on first contact. Never returns nil settings.
func (s *Service) EnsureProfile(externalID string, now time.Time) (*models.User, *models.Settings, error) {
	user, err := s.store.EnsureUser(externalID, now)
	if err != nil {
		return nil, nil, err
	}

	settings, err := s.store.GetSettings(user.ID)
	if err != nil {
		return nil, nil, err
	}
	if settings == nil {
		if err := s.store.UpsertSettings(user.ID, s.defaultGoalML, s.defaultTZ, now); err != nil {
			return nil, nil, err
		}
		settings, err = s.store.GetSettings(user.ID)
		if err != nil {
			return nil, nil, err
		}
		if settings == nil {
			return nil, nil, fmt.Errorf("%w: settings missing after upsert for user %d", ErrProfileInit, user.ID)
		}
	}
	return user, settings, nil
}

// Drink records an intake and returns the updated daily progress.
func (s *Service) Drink(externalID string, amountML int, now time.Time) (*Progress, error) {
	if !models.ValidAmount(amountML) {
		return nil, fmt.Errorf("%w: %d ml", ErrInvalidAmount, amountML)
	}

	user, settings, err := s.EnsureProfile(externalID, now)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.AddIntake(user.ID, amountML, now); err != nil {
		return nil, err
	}
	return s.progress(user.ID, settings, now)
}

// Stats returns the daily progress for the user's current local day.
func (s *Service) Stats(externalID string, now time.Time) (*Progress, error) {
	user, settings, err := s.EnsureProfile(externalID, now)
	if err != nil {
		return nil, err
	}
	return s.progress(user.ID, settings, now)
}

// Undo removes the most recent intake of the current local day and
// returns its amount plus the updated progress. When the day has no
// entries it reports undone=false and mutates nothing. Concurrent
// undos are best-effort: each call deletes at most one existing row.
func (s *Service) Undo(externalID string, now time.Time) (removedML int, undone bool, p *Progress, err error) {
	user, settings, err := s.EnsureProfile(externalID, now)
	if err != nil {
		return 0, false, nil, err
	}

	w, err := window.Day(now, settings.Timezone)
	if err != nil {
		return 0, false, nil, err
	}
	removedML, undone, err = s.store.DeleteLastIntake(user.ID, w)
	if err != nil {
		return 0, false, nil, err
	}

	// Re-query with the same now so the delete and the fresh totals
	// observe one consistent window.
	p, err = s.progress(user.ID, settings, now)
	if err != nil {
		return 0, false, nil, err
	}
	return removedML, undone, p, nil
}

// SetGoal updates the daily goal, clamped to the allowed range, and
// returns progress against the new goal.
func (s *Service) SetGoal(externalID string, goalML int, now time.Time) (*Progress, error) {
	user, settings, err := s.EnsureProfile(externalID, now)
	if err != nil {
		return nil, err
	}

	goalML = models.ClampGoal(goalML)
	if err := s.store.UpsertSettings(user.ID, goalML, settings.Timezone, now); err != nil {
		return nil, err
	}
	settings.DailyGoalML = goalML
	return s.progress(user.ID, settings, now)
}

// SetTimezone updates the user's timezone after validating the zone
// name, keeping the current goal.
func (s *Service) SetTimezone(externalID string, tz string, now time.Time) error {
	// Validate before persisting; a bad zone would poison every later query.
	if _, err := window.Day(now, tz); err != nil {
		return err
	}
	user, settings, err := s.EnsureProfile(externalID, now)
	if err != nil {
		return err
	}
	return s.store.UpsertSettings(user.ID, settings.DailyGoalML, tz, now)
}

// progress assembles the aggregate for one user and one instant.
func (s *Service) progress(userID int64, settings *models.Settings, now time.Time) (*Progress, error) {
	w, err := window.Day(now, settings.Timezone)
	if err != nil {
		return nil, err
	}

	total, err := s.store.SumIntake(userID, w)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.ListRecentIntake(userID, w, RecentLimit)
	if err != nil {
		return nil, err
	}

	return &Progress{
		TotalML:  total,
		GoalML:   settings.DailyGoalML,
		Percent:  progress.Percent(total, settings.DailyGoalML),
		Recent:   recent,
		Timezone: settings.Timezone,
	}, nil
}
