package filter

import (
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/models"
)

func fixture() models.Snapshot {
	return models.Snapshot{
		DailyLogs: []models.DailyLog{
			{ID: 1, Date: "2024-01-01", ExerciseIntensity: models.IntensityModerate},
			{ID: 2, Date: "2024-01-02", ExerciseIntensity: models.IntensityLow},
			{ID: 3, Date: "2024-01-03", ExerciseIntensity: models.IntensityModerate},
		},
		Meals: []models.Meal{
			{ID: 1, DailyLogID: 1, Date: "2024-01-01", MealType: models.MealLunch},
			{ID: 2, DailyLogID: 2, Date: "2024-01-02", MealType: models.MealDinner},
			{ID: 3, DailyLogID: 3, Date: "2024-01-03", MealType: models.MealBreakfast},
			{ID: 4, DailyLogID: 9, Date: "2023-12-31", MealType: models.MealLunch},
		},
		Measurements: []models.Measurement{
			{ID: 1, DailyLogID: 1, Date: "2024-01-01", Time: "08:00:00", Glucose: 90, UricAcid: 5.1},
			{ID: 2, DailyLogID: 2, Date: "2024-01-02", Time: "08:00:00", Glucose: 110, UricAcid: 6.2},
			{ID: 3, DailyLogID: 3, Date: "2024-01-03", Time: "21:00:00", Glucose: 130, UricAcid: 7.0},
		},
	}
}

func mealIDs(r Result) []int64 {
	ids := []int64{}
	for _, m := range r.Meals {
		ids = append(ids, m.ID)
	}
	return ids
}

func logIDs(r Result) []int64 {
	ids := []int64{}
	for _, l := range r.DailyLogs {
		ids = append(ids, l.ID)
	}
	return ids
}

func measurementIDs(r Result) []int64 {
	ids := []int64{}
	for _, m := range r.Measurements {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestApply(t *testing.T) {
	tests := []struct {
		name             string
		spec             Spec
		wantLogs         []int64
		wantMeals        []int64
		wantMeasurements []int64
	}{
		{
			name:             "empty spec keeps everything including orphans",
			spec:             Spec{},
			wantLogs:         []int64{1, 2, 3},
			wantMeals:        []int64{1, 2, 3, 4},
			wantMeasurements: []int64{1, 2, 3},
		},
		{
			name:             "single day range with intensity",
			spec:             Spec{DateRange: &DateRange{Start: "2024-01-01", End: "2024-01-01"}, Intensities: []models.ExerciseIntensity{models.IntensityModerate}},
			wantLogs:         []int64{1},
			wantMeals:        []int64{1},
			wantMeasurements: []int64{1},
		},
		{
			name:             "range is inclusive and drops orphans",
			spec:             Spec{DateRange: &DateRange{Start: "2024-01-01", End: "2024-01-02"}},
			wantLogs:         []int64{1, 2},
			wantMeals:        []int64{1, 2},
			wantMeasurements: []int64{1, 2},
		},
		{
			name:             "meal type does not cascade to logs",
			spec:             Spec{MealTypes: []models.MealType{models.MealLunch}},
			wantLogs:         []int64{1, 2, 3},
			wantMeals:        []int64{1, 4},
			wantMeasurements: []int64{1, 2, 3},
		},
		{
			name:             "intensity cascades to children",
			spec:             Spec{Intensities: []models.ExerciseIntensity{models.IntensityModerate}},
			wantLogs:         []int64{1, 3},
			wantMeals:        []int64{1, 3},
			wantMeasurements: []int64{1, 3},
		},
		{
			name:             "all filters combined",
			spec:             Spec{DateRange: &DateRange{Start: "2024-01-01", End: "2024-01-03"}, MealTypes: []models.MealType{models.MealDinner, models.MealBreakfast}, Intensities: []models.ExerciseIntensity{models.IntensityModerate}},
			wantLogs:         []int64{1, 3},
			wantMeals:        []int64{3},
			wantMeasurements: []int64{1, 3},
		},
		{
			name:             "range with no matches",
			spec:             Spec{DateRange: &DateRange{Start: "2025-01-01", End: "2025-12-31"}},
			wantLogs:         []int64{},
			wantMeals:        []int64{},
			wantMeasurements: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), tt.spec)
			if ids := logIDs(got); !reflect.DeepEqual(ids, tt.wantLogs) {
				t.Errorf("daily logs = %v, want %v", ids, tt.wantLogs)
			}
			if ids := mealIDs(got); !reflect.DeepEqual(ids, tt.wantMeals) {
				t.Errorf("meals = %v, want %v", ids, tt.wantMeals)
			}
			if ids := measurementIDs(got); !reflect.DeepEqual(ids, tt.wantMeasurements) {
				t.Errorf("measurements = %v, want %v", ids, tt.wantMeasurements)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	specs := []Spec{
		{},
		{DateRange: &DateRange{Start: "2024-01-02", End: "2024-01-03"}},
		{MealTypes: []models.MealType{models.MealLunch}},
		{Intensities: []models.ExerciseIntensity{models.IntensityLow, models.IntensityModerate}},
		{DateRange: &DateRange{Start: "2024-01-01", End: "2024-01-03"}, MealTypes: []models.MealType{models.MealBreakfast}, Intensities: []models.ExerciseIntensity{models.IntensityModerate}},
	}

	for _, spec := range specs {
		once := Apply(fixture(), spec)
		twice := Apply(once, spec)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("spec %+v not idempotent:\nonce:  %+v\ntwice: %+v", spec, once, twice)
		}
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	snap := fixture()
	before := fixture()
	result := Apply(snap, Spec{Intensities: []models.ExerciseIntensity{models.IntensityLow}})
	if len(result.DailyLogs) > 0 {
		result.DailyLogs[0].Date = "1999-01-01"
	}
	if !reflect.DeepEqual(snap, before) {
		t.Error("Apply modified its input snapshot")
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{name: "empty", spec: Spec{}},
		{name: "same day", spec: Spec{DateRange: &DateRange{Start: "2024-01-01", End: "2024-01-01"}}},
		{name: "reversed", spec: Spec{DateRange: &DateRange{Start: "2024-01-02", End: "2024-01-01"}}, wantErr: true},
		{name: "bad start", spec: Spec{DateRange: &DateRange{Start: "01/01/2024", End: "2024-01-01"}}, wantErr: true},
		{name: "unknown meal type", spec: Spec{MealTypes: []models.MealType{"Brunch"}}, wantErr: true},
		{name: "unknown intensity", spec: Spec{Intensities: []models.ExerciseIntensity{"Extreme"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSeries(t *testing.T) {
	result := Apply(fixture(), Spec{Intensities: []models.ExerciseIntensity{models.IntensityModerate}})

	glucose := GlucoseSeries(result)
	want := []Point{
		{Date: "2024-01-01", Time: "08:00:00", Value: 90},
		{Date: "2024-01-03", Time: "21:00:00", Value: 130},
	}
	if !reflect.DeepEqual(glucose, want) {
		t.Errorf("GlucoseSeries() = %+v, want %+v", glucose, want)
	}

	uric := UricAcidSeries(result)
	if len(uric) != 2 || uric[1].Value != 7.0 {
		t.Errorf("UricAcidSeries() = %+v", uric)
	}
	if uric[0].Label() != "2024-01-01 08:00:00" {
		t.Errorf("Label() = %q", uric[0].Label())
	}
}
