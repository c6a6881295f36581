package models

import (
	"time"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
)

// Measurement is a glucose/uric-acid reading attached to a DailyLog by date
type Measurement struct {
	ID         int64   `json:"id"`
	DailyLogID int64   `json:"daily_log_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"` // HH:MM:SS
	Glucose    float64 `json:"glucose"`
	UricAcid   float64 `json:"uric_acid"`
}

func (m Measurement) Validate() error {
	if err := ValidateDate("date", m.Date); err != nil {
		return err
	}
	if _, err := time.Parse(constants.TimeFormat, m.Time); err != nil {
		return apperrors.Invalid("time", "must be a time in HH:MM:SS format (got %q)", m.Time)
	}
	if err := ValidateNonNegative("glucose", m.Glucose); err != nil {
		return err
	}
	return ValidateNonNegative("uric_acid", m.UricAcid)
}
