// Package tracker composes storage calls into the operations the user sees:
// validated inserts, parent resolution for meals and measurements, and
// explicit snapshot reloads.
package tracker

import (
	"fmt"

	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage"
)

func AddDailyLog(store storage.Provider, log models.DailyLog) (int64, error) {
	if err := log.Validate(); err != nil {
		return 0, err
	}
	return store.InsertDailyLog(log)
}

// ResolveParent returns the id of the most recent daily log dated date.
func ResolveParent(store storage.Provider, date string) (int64, error) {
	id, err := store.FindLatestDailyLogIDByDate(date)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoParentFound) {
			logger.Warn("No daily log for date", "date", date)
		}
		return 0, err
	}
	return id, nil
}

// AddMeal attaches meal to the latest daily log with the same date and inserts
// it. Nothing is written when no such log exists.
func AddMeal(store storage.Provider, meal models.Meal) (int64, error) {
	if err := meal.Validate(); err != nil {
		return 0, err
	}
	parent, err := ResolveParent(store, meal.Date)
	if err != nil {
		return 0, err
	}
	meal.DailyLogID = parent
	return store.InsertMeal(meal)
}

// AddMeasurement follows the same parent rule as AddMeal.
func AddMeasurement(store storage.Provider, m models.Measurement) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	parent, err := ResolveParent(store, m.Date)
	if err != nil {
		return 0, err
	}
	m.DailyLogID = parent
	return store.InsertMeasurement(m)
}

// UpdateDailyLog overwrites every field of the log with log.ID. Zero rows
// affected means the id no longer exists and is reported as such by the
// returned count, not as an error.
func UpdateDailyLog(store storage.Provider, log models.DailyLog) (int64, error) {
	if log.ID <= 0 {
		return 0, apperrors.Invalid("id", "must be a positive daily log id")
	}
	if err := log.Validate(); err != nil {
		return 0, err
	}
	return store.UpdateDailyLog(log)
}

// DeleteDailyLog removes one daily log. Its meals and measurements stay.
func DeleteDailyLog(store storage.Provider, id int64) (int64, error) {
	return store.DeleteDailyLog(id)
}

// Reload reads all three tables. Callers hold the snapshot until they reload
// again; nothing refreshes it implicitly.
func Reload(store storage.Provider) (models.Snapshot, error) {
	logs, err := store.ListDailyLogs()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load daily logs: %w", err)
	}
	meals, err := store.ListMeals()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load meals: %w", err)
	}
	measurements, err := store.ListMeasurements()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load measurements: %w", err)
	}
	return models.Snapshot{
		DailyLogs:    logs,
		Meals:        meals,
		Measurements: measurements,
	}, nil
}
