// Package storagetest holds the behaviour every storage.Provider backend must share.
package storagetest

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage"
)

// Factory returns a freshly initialized, empty provider.
type Factory func(t *testing.T) storage.Provider

func SampleLog(date string) models.DailyLog {
	return models.DailyLog{
		Date:              date,
		SleepQuality:      70,
		SleepHours:        "7h",
		ExerciseType:      "walk",
		ExerciseIntensity: models.IntensityLow,
		WaterIntake:       models.WaterModerate,
		AlcoholAmount:     models.DrinkNone,
		WeightKg:          72.5,
		BodyScore:         80,
	}
}

// Run exercises the full Provider contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("InsertAssignsIncreasingIDs", func(t *testing.T) {
		store := newStore(t)
		first, err := store.InsertDailyLog(SampleLog("2024-03-01"))
		if err != nil {
			t.Fatalf("failed to insert log: %v", err)
		}
		second, err := store.InsertDailyLog(SampleLog("2024-03-02"))
		if err != nil {
			t.Fatalf("failed to insert log: %v", err)
		}
		if second <= first {
			t.Errorf("expected second id > %d, got %d", first, second)
		}
	})

	t.Run("FindLatestPicksHighestID", func(t *testing.T) {
		store := newStore(t)
		mustInsertLog(t, store, SampleLog("2024-03-01"))
		mustInsertLog(t, store, SampleLog("2024-03-05"))
		latest := mustInsertLog(t, store, SampleLog("2024-03-01"))

		id, err := store.FindLatestDailyLogIDByDate("2024-03-01")
		if err != nil {
			t.Fatalf("failed to find log: %v", err)
		}
		if id != latest {
			t.Errorf("expected id %d, got %d", latest, id)
		}
	})

	t.Run("FindLatestReportsNoParent", func(t *testing.T) {
		store := newStore(t)
		mustInsertLog(t, store, SampleLog("2024-03-01"))

		_, err := store.FindLatestDailyLogIDByDate("2024-03-02")
		if !errors.Is(err, apperrors.ErrNoParentFound) {
			t.Fatalf("expected ErrNoParentFound, got %v", err)
		}
	})

	t.Run("GetRoundTrip", func(t *testing.T) {
		store := newStore(t)
		want := SampleLog("2024-03-01")
		want.AlcoholAmount = models.DrinkLittle
		want.AlcoholType = "wine"
		want.ID = mustInsertLog(t, store, want)

		got, err := store.GetDailyLog(want.ID)
		if err != nil {
			t.Fatalf("failed to get log: %v", err)
		}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}

		if _, err := store.GetDailyLog(want.ID + 100); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown id, got %v", err)
		}
	})

	t.Run("UpdateOverwritesRow", func(t *testing.T) {
		store := newStore(t)
		log := SampleLog("2024-03-01")
		log.ID = mustInsertLog(t, store, log)

		log.SleepQuality = 40
		log.ExerciseIntensity = models.IntensityHigh
		log.Date = "2024-03-02"
		rows, err := store.UpdateDailyLog(log)
		if err != nil {
			t.Fatalf("failed to update log: %v", err)
		}
		if rows != 1 {
			t.Errorf("expected 1 row affected, got %d", rows)
		}

		got, err := store.GetDailyLog(log.ID)
		if err != nil {
			t.Fatalf("failed to get log: %v", err)
		}
		if got != log {
			t.Errorf("expected %+v, got %+v", log, got)
		}
	})

	t.Run("UpdateMissingIDAffectsNothing", func(t *testing.T) {
		store := newStore(t)
		log := SampleLog("2024-03-01")
		log.ID = 999
		rows, err := store.UpdateDailyLog(log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rows != 0 {
			t.Errorf("expected 0 rows affected, got %d", rows)
		}
	})

	t.Run("DeleteLeavesChildren", func(t *testing.T) {
		store := newStore(t)
		parent := mustInsertLog(t, store, SampleLog("2024-03-01"))
		if _, err := store.InsertMeal(models.Meal{DailyLogID: parent, Date: "2024-03-01", MealType: models.MealLunch, Description: "soup"}); err != nil {
			t.Fatalf("failed to insert meal: %v", err)
		}
		if _, err := store.InsertMeasurement(models.Measurement{DailyLogID: parent, Date: "2024-03-01", Time: "08:00:00", Glucose: 95}); err != nil {
			t.Fatalf("failed to insert measurement: %v", err)
		}

		rows, err := store.DeleteDailyLog(parent)
		if err != nil {
			t.Fatalf("failed to delete log: %v", err)
		}
		if rows != 1 {
			t.Errorf("expected 1 row affected, got %d", rows)
		}

		rows, err = store.DeleteDailyLog(parent)
		if err != nil {
			t.Fatalf("unexpected error on second delete: %v", err)
		}
		if rows != 0 {
			t.Errorf("expected 0 rows on second delete, got %d", rows)
		}

		meals, err := store.ListMeals()
		if err != nil {
			t.Fatalf("failed to list meals: %v", err)
		}
		if len(meals) != 1 || meals[0].DailyLogID != parent {
			t.Errorf("expected orphaned meal referencing %d, got %+v", parent, meals)
		}
		measurements, err := store.ListMeasurements()
		if err != nil {
			t.Fatalf("failed to list measurements: %v", err)
		}
		if len(measurements) != 1 || measurements[0].DailyLogID != parent {
			t.Errorf("expected orphaned measurement referencing %d, got %+v", parent, measurements)
		}
	})

	t.Run("DeletedIDsAreNotReused", func(t *testing.T) {
		store := newStore(t)
		mustInsertLog(t, store, SampleLog("2024-03-01"))
		last := mustInsertLog(t, store, SampleLog("2024-03-02"))
		if _, err := store.DeleteDailyLog(last); err != nil {
			t.Fatalf("failed to delete log: %v", err)
		}
		next := mustInsertLog(t, store, SampleLog("2024-03-03"))
		if next <= last {
			t.Errorf("expected id after %d, got %d", last, next)
		}
	})

	t.Run("ListsPreserveInsertionOrder", func(t *testing.T) {
		store := newStore(t)
		parent := mustInsertLog(t, store, SampleLog("2024-03-01"))
		for _, mt := range []models.MealType{models.MealDinner, models.MealBreakfast, models.MealLunch} {
			if _, err := store.InsertMeal(models.Meal{DailyLogID: parent, Date: "2024-03-01", MealType: mt}); err != nil {
				t.Fatalf("failed to insert meal: %v", err)
			}
		}
		for _, tm := range []string{"21:00:00", "07:30:00"} {
			if _, err := store.InsertMeasurement(models.Measurement{DailyLogID: parent, Date: "2024-03-01", Time: tm, Glucose: 100, UricAcid: 5.5}); err != nil {
				t.Fatalf("failed to insert measurement: %v", err)
			}
		}

		meals, err := store.ListMeals()
		if err != nil {
			t.Fatalf("failed to list meals: %v", err)
		}
		if len(meals) != 3 || meals[0].MealType != models.MealDinner || meals[2].MealType != models.MealLunch {
			t.Errorf("unexpected meal order: %+v", meals)
		}

		measurements, err := store.ListMeasurements()
		if err != nil {
			t.Fatalf("failed to list measurements: %v", err)
		}
		if len(measurements) != 2 || measurements[0].Time != "21:00:00" {
			t.Errorf("unexpected measurement order: %+v", measurements)
		}
		if measurements[1].UricAcid != 5.5 {
			t.Errorf("expected uric acid 5.5, got %v", measurements[1].UricAcid)
		}
	})

	t.Run("EmptyListsAreNotNil", func(t *testing.T) {
		store := newStore(t)
		logs, err := store.ListDailyLogs()
		if err != nil {
			t.Fatalf("failed to list logs: %v", err)
		}
		if logs == nil || len(logs) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", logs)
		}
	})

	for _, mode := range []storage.ResetMode{storage.ResetSoft, storage.ResetFull} {
		t.Run("Reset_"+mode.String(), func(t *testing.T) {
			store := newStore(t)
			parent := mustInsertLog(t, store, SampleLog("2024-03-01"))
			if _, err := store.InsertMeal(models.Meal{DailyLogID: parent, Date: "2024-03-01", MealType: models.MealLunch}); err != nil {
				t.Fatalf("failed to insert meal: %v", err)
			}
			if _, err := store.InsertMeasurement(models.Measurement{DailyLogID: parent, Date: "2024-03-01", Time: "08:00:00"}); err != nil {
				t.Fatalf("failed to insert measurement: %v", err)
			}

			if err := store.Reset(mode); err != nil {
				t.Fatalf("failed to reset: %v", err)
			}

			logs, _ := store.ListDailyLogs()
			meals, _ := store.ListMeals()
			measurements, _ := store.ListMeasurements()
			if len(logs)+len(meals)+len(measurements) != 0 {
				t.Errorf("expected empty store after %s reset, got %d/%d/%d", mode, len(logs), len(meals), len(measurements))
			}

			// The store stays usable.
			mustInsertLog(t, store, SampleLog("2024-03-02"))
		})
	}
}

func mustInsertLog(t *testing.T, store storage.Provider, log models.DailyLog) int64 {
	t.Helper()
	id, err := store.InsertDailyLog(log)
	if err != nil {
		t.Fatalf("failed to insert log: %v", err)
	}
	return id
}
