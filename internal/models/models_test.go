package models

import (
	"math"
	"testing"

	apperrors "github.com/julianstephens/healthlit/internal/errors"
)

func validLog() DailyLog {
	return DailyLog{
		Date:              "2024-01-01",
		SleepQuality:      80,
		SleepHours:        "7.5",
		ExerciseType:      "running",
		ExerciseIntensity: IntensityModerate,
		WaterIntake:       WaterPlenty,
		AlcoholAmount:     DrinkNone,
		WeightKg:          72.4,
		BodyScore:         21.5,
	}
}

func TestDailyLogValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DailyLog)
		wantErr bool
	}{
		{"valid", func(l *DailyLog) {}, false},
		{"sleep quality lower bound", func(l *DailyLog) { l.SleepQuality = 0 }, false},
		{"sleep quality upper bound", func(l *DailyLog) { l.SleepQuality = 100 }, false},
		{"sleep quality negative", func(l *DailyLog) { l.SleepQuality = -1 }, true},
		{"sleep quality above max", func(l *DailyLog) { l.SleepQuality = 101 }, true},
		{"missing date", func(l *DailyLog) { l.Date = "" }, true},
		{"bad date", func(l *DailyLog) { l.Date = "01/02/2024" }, true},
		{"unknown intensity", func(l *DailyLog) { l.ExerciseIntensity = "Extreme" }, true},
		{"unknown water", func(l *DailyLog) { l.WaterIntake = "" }, true},
		{"unknown alcohol", func(l *DailyLog) { l.AlcoholAmount = "Lots" }, true},
		{"negative weight", func(l *DailyLog) { l.WeightKg = -0.1 }, true},
		{"zero weight", func(l *DailyLog) { l.WeightKg = 0 }, false},
		{"NaN body score", func(l *DailyLog) { l.BodyScore = math.NaN() }, true},
		{"free text may be empty", func(l *DailyLog) { l.SleepHours, l.ExerciseType, l.AlcoholType = "", "", "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLog()
			tt.mutate(&l)
			err := l.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.Is(err, apperrors.ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestMealValidate(t *testing.T) {
	if err := (Meal{Date: "2024-01-01", MealType: MealLunch}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Meal{Date: "2024-01-01", MealType: "Brunch"}).Validate(); err == nil {
		t.Error("expected error for unknown meal type")
	}
	if err := (Meal{Date: "2024-13-01", MealType: MealDinner}).Validate(); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestMeasurementValidate(t *testing.T) {
	base := Measurement{Date: "2024-01-01", Time: "07:30:00", Glucose: 95, UricAcid: 5.2}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := base
	bad.Time = "7:30"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for short time")
	}

	bad = base
	bad.Glucose = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative glucose")
	}

	bad = base
	bad.UricAcid = math.Inf(1)
	if err := bad.Validate(); err == nil {
		t.Error("expected error for infinite uric acid")
	}
}

func TestParseEnums(t *testing.T) {
	if v, ok := ParseExerciseIntensity(" moderate "); !ok || v != IntensityModerate {
		t.Errorf("ParseExerciseIntensity = %q, %v", v, ok)
	}
	if _, ok := ParseExerciseIntensity("extreme"); ok {
		t.Error("ParseExerciseIntensity accepted unknown value")
	}
	if v, ok := ParseMealType("DINNER"); !ok || v != MealDinner {
		t.Errorf("ParseMealType = %q, %v", v, ok)
	}
	if v, ok := ParseWaterIntake("plenty"); !ok || v != WaterPlenty {
		t.Errorf("ParseWaterIntake = %q, %v", v, ok)
	}
	if v, ok := ParseDrinkAmount("none"); !ok || v != DrinkNone {
		t.Errorf("ParseDrinkAmount = %q, %v", v, ok)
	}
}

func TestSnapshotFindDailyLog(t *testing.T) {
	s := Snapshot{DailyLogs: []DailyLog{{ID: 1, Date: "2024-01-01"}, {ID: 3, Date: "2024-01-02"}}}
	if l, ok := s.FindDailyLog(3); !ok || l.Date != "2024-01-02" {
		t.Errorf("FindDailyLog(3) = %+v, %v", l, ok)
	}
	if _, ok := s.FindDailyLog(2); ok {
		t.Error("FindDailyLog(2) found a log that does not exist")
	}
}
