package storage

import (
	"errors"
	"slices"

	"github.com/julianstephens/weeklit/internal/models"
)

var (
	// ErrWeekNotFound is returned by GetWeek when no week has the given id.
	ErrWeekNotFound = errors.New("week not found")
	// ErrNotInitialized is returned by Load before Init has created the store.
	ErrNotInitialized = errors.New("storage not initialized, run 'weeklit init' first")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Weeks
	GetWeek(weekID string) (models.WeekData, error)
	GetAllWeeks() ([]models.WeekData, error)
	SaveWeek(models.WeekData) error
	SaveWeeks([]models.WeekData) error
	FindWeeksOverlapping(dates []string) ([]models.WeekData, error)

	// Utils
	GetConfigPath() string
}

// Overlaps reports whether any of dates falls within the week's start and end.
// Dates are YYYY-MM-DD strings, which order correctly as strings.
func Overlaps(w models.WeekData, dates []string) bool {
	return slices.ContainsFunc(dates, func(d string) bool {
		return d >= w.StartDate && d <= w.EndDate
	})
}

// DateBounds returns the smallest and largest of dates.
func DateBounds(dates []string) (lo, hi string) {
	if len(dates) == 0 {
		return "", ""
	}
	return slices.Min(dates), slices.Max(dates)
}

// FileStore is implemented by providers persisted to a single local file,
// which is what the backup manager snapshots.
type FileStore interface {
	Provider
	FilePath() string
}
