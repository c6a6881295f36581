package storage

import (
	"errors"

	"github.com/julianstephens/healthlit/internal/models"
)

// ResetMode selects how Reset clears the store
type ResetMode int

const (
	// ResetSoft deletes every row and keeps the schema
	ResetSoft ResetMode = iota
	// ResetFull drops all three tables and recreates them empty
	ResetFull
)

func (m ResetMode) String() string {
	if m == ResetFull {
		return "full"
	}
	return "soft"
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	Reset(mode ResetMode) error

	// Daily logs
	InsertDailyLog(models.DailyLog) (int64, error)
	// FindLatestDailyLogIDByDate returns the highest id among logs dated date.
	// The error matches errors.ErrNoParentFound when no log has that date.
	FindLatestDailyLogIDByDate(date string) (int64, error)
	GetDailyLog(id int64) (models.DailyLog, error)
	// UpdateDailyLog overwrites every column of the row with log.ID and
	// reports rows affected. A missing id affects zero rows and is not an error.
	UpdateDailyLog(log models.DailyLog) (int64, error)
	// DeleteDailyLog removes the row with id. Meals and measurements that
	// reference it are left in place.
	DeleteDailyLog(id int64) (int64, error)
	ListDailyLogs() ([]models.DailyLog, error)

	// Meals
	InsertMeal(models.Meal) (int64, error)
	ListMeals() ([]models.Meal, error)

	// Measurements
	InsertMeasurement(models.Measurement) (int64, error)
	ListMeasurements() ([]models.Measurement, error)

	// Utils
	GetConfigPath() string
}

var (
	// ErrNotLoaded is returned by backends used before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotFound is returned by GetDailyLog for an unknown id
	ErrNotFound = errors.New("daily log not found")
)
