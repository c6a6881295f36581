package tracker

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage/sqlite"
)

func setupTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newLog(date string, intensity models.ExerciseIntensity) models.DailyLog {
	return models.DailyLog{
		Date:              date,
		SleepQuality:      60,
		ExerciseIntensity: intensity,
		WaterIntake:       models.WaterModerate,
		AlcoholAmount:     models.DrinkNone,
	}
}

func TestAddMealResolvesLatestParent(t *testing.T) {
	store := setupTestStore(t)

	if _, err := AddDailyLog(store, newLog("2024-01-01", models.IntensityLow)); err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	if _, err := AddDailyLog(store, newLog("2024-01-02", models.IntensityLow)); err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	latest, err := AddDailyLog(store, newLog("2024-01-01", models.IntensityHigh))
	if err != nil {
		t.Fatalf("failed to add log: %v", err)
	}

	if _, err := AddMeal(store, models.Meal{Date: "2024-01-01", MealType: models.MealLunch, DailyLogID: 999}); err != nil {
		t.Fatalf("failed to add meal: %v", err)
	}
	if _, err := AddMeasurement(store, models.Measurement{Date: "2024-01-01", Time: "08:15:00", Glucose: 92}); err != nil {
		t.Fatalf("failed to add measurement: %v", err)
	}

	snap, err := Reload(store)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if got := snap.Meals[0].DailyLogID; got != latest {
		t.Errorf("expected meal parent %d, got %d", latest, got)
	}
	if got := snap.Measurements[0].DailyLogID; got != latest {
		t.Errorf("expected measurement parent %d, got %d", latest, got)
	}
}

func TestAddWithoutParent(t *testing.T) {
	store := setupTestStore(t)

	if _, err := AddDailyLog(store, newLog("2024-01-01", models.IntensityModerate)); err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	if _, err := AddMeal(store, models.Meal{Date: "2024-01-01", MealType: models.MealLunch}); err != nil {
		t.Fatalf("failed to add meal: %v", err)
	}

	_, err := AddMeal(store, models.Meal{Date: "2024-01-02", MealType: models.MealDinner})
	if !errors.Is(err, apperrors.ErrNoParentFound) {
		t.Fatalf("expected ErrNoParentFound, got %v", err)
	}
	if err.Error() != "no daily log found for date 2024-01-02" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	_, err = AddMeasurement(store, models.Measurement{Date: "2024-01-02", Time: "09:00:00"})
	if !errors.Is(err, apperrors.ErrNoParentFound) {
		t.Fatalf("expected ErrNoParentFound, got %v", err)
	}

	snap, err := Reload(store)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if len(snap.Meals) != 1 || len(snap.Measurements) != 0 {
		t.Errorf("expected 1 meal and 0 measurements, got %d and %d", len(snap.Meals), len(snap.Measurements))
	}
}

func TestValidationRejectsBeforeWrite(t *testing.T) {
	store := setupTestStore(t)

	tests := []struct {
		name string
		add  func() error
	}{
		{
			name: "sleep quality above range",
			add: func() error {
				l := newLog("2024-01-01", models.IntensityNone)
				l.SleepQuality = 101
				_, err := AddDailyLog(store, l)
				return err
			},
		},
		{
			name: "negative weight",
			add: func() error {
				l := newLog("2024-01-01", models.IntensityNone)
				l.WeightKg = -1
				_, err := AddDailyLog(store, l)
				return err
			},
		},
		{
			name: "unknown meal type",
			add: func() error {
				_, err := AddMeal(store, models.Meal{Date: "2024-01-01", MealType: "Brunch"})
				return err
			},
		},
		{
			name: "bad measurement time",
			add: func() error {
				_, err := AddMeasurement(store, models.Measurement{Date: "2024-01-01", Time: "8am"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	snap, err := Reload(store)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if len(snap.DailyLogs)+len(snap.Meals)+len(snap.Measurements) != 0 {
		t.Errorf("expected no rows written, got %+v", snap)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	store := setupTestStore(t)

	id, err := AddDailyLog(store, newLog("2024-01-01", models.IntensityLow))
	if err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	if _, err := AddMeal(store, models.Meal{Date: "2024-01-01", MealType: models.MealBreakfast}); err != nil {
		t.Fatalf("failed to add meal: %v", err)
	}

	updated := newLog("2024-01-01", models.IntensityHigh)
	updated.ID = id
	updated.BodyScore = 88.5
	rows, err := UpdateDailyLog(store, updated)
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}

	snap, _ := Reload(store)
	got, ok := snap.FindDailyLog(id)
	if !ok || got != updated {
		t.Errorf("expected %+v after update, got %+v", updated, got)
	}

	missing := updated
	missing.ID = id + 50
	if rows, err := UpdateDailyLog(store, missing); err != nil || rows != 0 {
		t.Errorf("expected (0, nil) for missing id, got (%d, %v)", rows, err)
	}

	if _, err := UpdateDailyLog(store, newLog("2024-01-01", models.IntensityLow)); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation for zero id, got %v", err)
	}

	rows, err = DeleteDailyLog(store, id)
	if err != nil || rows != 1 {
		t.Fatalf("expected (1, nil) from delete, got (%d, %v)", rows, err)
	}

	snap, _ = Reload(store)
	if len(snap.DailyLogs) != 0 {
		t.Errorf("expected no daily logs, got %d", len(snap.DailyLogs))
	}
	if len(snap.Meals) != 1 || snap.Meals[0].DailyLogID != id {
		t.Errorf("expected meal to survive with parent %d, got %+v", id, snap.Meals)
	}
}
