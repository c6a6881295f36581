// Package filter narrows an in-memory snapshot by date range, meal type and
// exercise intensity. It never touches storage.
package filter

import (
	"slices"
	"time"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/models"
)

// DateRange is a closed interval of ISO dates.
type DateRange struct {
	Start string
	End   string
}

// Contains compares ISO dates lexicographically.
func (r DateRange) Contains(date string) bool {
	return r.Start <= date && date <= r.End
}

// Spec selects which rows survive. Zero values select everything.
type Spec struct {
	DateRange   *DateRange
	MealTypes   []models.MealType
	Intensities []models.ExerciseIntensity
}

// Result holds the three filtered record sets in storage order.
type Result = models.Snapshot

// IsEmpty reports whether the spec filters nothing.
func (s Spec) IsEmpty() bool {
	return s.DateRange == nil && len(s.MealTypes) == 0 && len(s.Intensities) == 0
}

func (s Spec) Validate() error {
	if s.DateRange != nil {
		start, err := time.Parse(constants.DateFormat, s.DateRange.Start)
		if err != nil {
			return apperrors.Invalid("from", "must be a date in YYYY-MM-DD format (got %q)", s.DateRange.Start)
		}
		end, err := time.Parse(constants.DateFormat, s.DateRange.End)
		if err != nil {
			return apperrors.Invalid("to", "must be a date in YYYY-MM-DD format (got %q)", s.DateRange.End)
		}
		if start.After(end) {
			return apperrors.Invalid("from", "must not be after %s", s.DateRange.End)
		}
	}
	for _, mt := range s.MealTypes {
		if !mt.Valid() {
			return apperrors.Invalid("meal_type", "unknown meal type %q", mt)
		}
	}
	for _, in := range s.Intensities {
		if !in.Valid() {
			return apperrors.Invalid("intensity", "unknown exercise intensity %q", in)
		}
	}
	return nil
}

// Apply filters snap in a fixed order:
//
//  1. date range on daily logs
//  2. meals and measurements cascade to surviving parents (only with a date range)
//  3. meal types on meals
//  4. intensities on daily logs, then cascade again
//
// Meal-type filtering never removes daily logs. The input is not modified.
func Apply(snap models.Snapshot, spec Spec) Result {
	logs := snap.DailyLogs
	meals := snap.Meals
	measurements := snap.Measurements

	if spec.DateRange != nil {
		logs = keep(logs, func(l models.DailyLog) bool { return spec.DateRange.Contains(l.Date) })
		meals, measurements = cascade(logs, meals, measurements)
	}

	if len(spec.MealTypes) > 0 {
		meals = keep(meals, func(m models.Meal) bool { return slices.Contains(spec.MealTypes, m.MealType) })
	}

	if len(spec.Intensities) > 0 {
		logs = keep(logs, func(l models.DailyLog) bool { return slices.Contains(spec.Intensities, l.ExerciseIntensity) })
		meals, measurements = cascade(logs, meals, measurements)
	}

	return Result{
		DailyLogs:    copyOf(logs),
		Meals:        copyOf(meals),
		Measurements: copyOf(measurements),
	}
}

func cascade(logs []models.DailyLog, meals []models.Meal, measurements []models.Measurement) ([]models.Meal, []models.Measurement) {
	ids := make(map[int64]struct{}, len(logs))
	for _, l := range logs {
		ids[l.ID] = struct{}{}
	}
	meals = keep(meals, func(m models.Meal) bool {
		_, ok := ids[m.DailyLogID]
		return ok
	})
	measurements = keep(measurements, func(m models.Measurement) bool {
		_, ok := ids[m.DailyLogID]
		return ok
	})
	return meals, measurements
}

func keep[T any](rows []T, pred func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func copyOf[T any](rows []T) []T {
	return append(make([]T, 0, len(rows)), rows...)
}
