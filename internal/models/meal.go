package models

import apperrors "github.com/julianstephens/healthlit/internal/errors"

// Meal is a single meal entry attached to a DailyLog by date
type Meal struct {
	ID          int64    `json:"id"`
	DailyLogID  int64    `json:"daily_log_id"`
	Date        string   `json:"date"` // YYYY-MM-DD
	MealType    MealType `json:"meal_type"`
	Description string   `json:"description"`
}

func (m Meal) Validate() error {
	if err := ValidateDate("date", m.Date); err != nil {
		return err
	}
	if !m.MealType.Valid() {
		return apperrors.Invalid("meal_type", "must be one of Breakfast, Lunch, Dinner (got %q)", m.MealType)
	}
	return nil
}
