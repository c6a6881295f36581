package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/healthlit/internal/models"
)

func validLog(id int64, date string) models.DailyLog {
	return models.DailyLog{
		ID:                id,
		Date:              date,
		SleepQuality:      50,
		ExerciseIntensity: models.IntensityNone,
		WaterIntake:       models.WaterModerate,
		AlcoholAmount:     models.DrinkNone,
	}
}

func TestCheckIntegrity_Clean(t *testing.T) {
	snap := models.Snapshot{
		DailyLogs:    []models.DailyLog{validLog(1, "2024-01-01")},
		Meals:        []models.Meal{{ID: 1, DailyLogID: 1, Date: "2024-01-01", MealType: models.MealLunch}},
		Measurements: []models.Measurement{{ID: 1, DailyLogID: 1, Date: "2024-01-01", Time: "08:00:00"}},
	}

	result := CheckIntegrity(snap)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
	if !strings.Contains(result.FormatReport(), "No integrity problems") {
		t.Errorf("unexpected clean report: %q", result.FormatReport())
	}
}

func TestCheckIntegrity_DetectsProblems(t *testing.T) {
	edited := validLog(2, "2024-01-05")
	invalid := validLog(3, "2024-01-03")
	invalid.SleepQuality = 250

	snap := models.Snapshot{
		DailyLogs: []models.DailyLog{edited, invalid, validLog(4, "2024-01-03")},
		Meals: []models.Meal{
			{ID: 1, DailyLogID: 1, Date: "2024-01-01", MealType: models.MealLunch},
			{ID: 2, DailyLogID: 2, Date: "2024-01-02", MealType: models.MealDinner},
		},
		Measurements: []models.Measurement{
			{ID: 1, DailyLogID: 1, Date: "2024-01-01", Time: "08:00:00"},
			{ID: 2, DailyLogID: 4, Date: "2024-01-03", Time: "08:00:00"},
		},
	}

	result := CheckIntegrity(snap)

	tests := []struct {
		kind ConflictType
		want int
	}{
		{ConflictOrphanedMeal, 1},
		{ConflictOrphanedMeasurement, 1},
		{ConflictDateMismatch, 1},
		{ConflictInvalidRecord, 1},
		{ConflictSharedDate, 1},
	}
	for _, tt := range tests {
		if got := result.Count(tt.kind); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d\n%s", tt.kind, got, tt.want, result.FormatReport())
		}
	}

	report := result.FormatReport()
	if !strings.Contains(report, "new entries attach to 4") {
		t.Errorf("expected shared date note to name the latest id, got:\n%s", report)
	}
}

func TestCheckIntegrity_DoesNotModifySnapshot(t *testing.T) {
	snap := models.Snapshot{
		DailyLogs: []models.DailyLog{validLog(1, "2024-01-01")},
		Meals:     []models.Meal{{ID: 1, DailyLogID: 7, Date: "2024-01-01", MealType: models.MealLunch}},
	}
	CheckIntegrity(snap)
	if snap.Meals[0].DailyLogID != 7 || len(snap.DailyLogs) != 1 {
		t.Error("CheckIntegrity modified its input")
	}
}
