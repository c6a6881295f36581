package models

import (
	"math"
	"time"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
)

// DailyLog is one day's aggregate wellness entry. Several logs may share a date.
type DailyLog struct {
	ID                int64             `json:"id"`
	Date              string            `json:"date"` // YYYY-MM-DD
	SleepQuality      int               `json:"sleep_quality"`
	SleepHours        string            `json:"sleep_hours"`
	ExerciseType      string            `json:"exercise_type"`
	ExerciseIntensity ExerciseIntensity `json:"exercise_intensity"`
	WaterIntake       WaterIntake       `json:"water_intake"`
	AlcoholAmount     DrinkAmount       `json:"alcohol_amount"`
	AlcoholType       string            `json:"alcohol_type"`
	WeightKg          float64           `json:"weight_kg"`
	BodyScore         float64           `json:"body_score"`
}

// Validate enforces the type and range constraints of the entry form.
func (l DailyLog) Validate() error {
	if err := ValidateDate("date", l.Date); err != nil {
		return err
	}
	if l.SleepQuality < constants.MinSleepQuality || l.SleepQuality > constants.MaxSleepQuality {
		return apperrors.Invalid("sleep_quality", "must be between %d and %d", constants.MinSleepQuality, constants.MaxSleepQuality)
	}
	if !l.ExerciseIntensity.Valid() {
		return apperrors.Invalid("exercise_intensity", "must be one of None, Low, Moderate, High (got %q)", l.ExerciseIntensity)
	}
	if !l.WaterIntake.Valid() {
		return apperrors.Invalid("water_intake", "must be one of Little, Moderate, Plenty (got %q)", l.WaterIntake)
	}
	if !l.AlcoholAmount.Valid() {
		return apperrors.Invalid("alcohol_amount", "must be one of None, Little, Moderate, Plenty (got %q)", l.AlcoholAmount)
	}
	if err := ValidateNonNegative("weight_kg", l.WeightKg); err != nil {
		return err
	}
	return ValidateNonNegative("body_score", l.BodyScore)
}

// ValidateDate checks that value is an ISO calendar date.
func ValidateDate(field, value string) error {
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return apperrors.Invalid(field, "must be a date in YYYY-MM-DD format (got %q)", value)
	}
	return nil
}

// ValidateNonNegative rejects negative and NaN readings.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.Invalid(field, "must be a finite number")
	}
	if v < 0 {
		return apperrors.Invalid(field, "must not be negative (got %g)", v)
	}
	return nil
}
