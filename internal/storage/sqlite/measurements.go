package sqlite

import (
	"database/sql"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
)

func (s *Store) InsertMeasurement(m models.Measurement) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(`
		INSERT INTO measurements (daily_log_id, date, time, glucose, uric_acid)
		VALUES (?, ?, ?, ?, ?)`,
		m.DailyLogID, m.Date, m.Time, m.Glucose, m.UricAcid)
	if err != nil {
		return 0, apperrors.Store("insert", constants.TableMeasurements, 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.Store("insert", constants.TableMeasurements, 0, err)
	}
	logger.Debug("Inserted measurement", "id", id, "daily_log_id", m.DailyLogID, "date", m.Date, "time", m.Time)
	return id, nil
}

func (s *Store) ListMeasurements() ([]models.Measurement, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id, daily_log_id, date, time, glucose, uric_acid FROM measurements ORDER BY id`)
	if err != nil {
		return nil, apperrors.Store("list", constants.TableMeasurements, 0, err)
	}
	defer rows.Close()

	measurements := []models.Measurement{}
	for rows.Next() {
		var m models.Measurement
		var parentID sql.NullInt64
		if err := rows.Scan(&m.ID, &parentID, &m.Date, &m.Time, &m.Glucose, &m.UricAcid); err != nil {
			return nil, apperrors.Store("list", constants.TableMeasurements, 0, err)
		}
		m.DailyLogID = parentID.Int64
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store("list", constants.TableMeasurements, 0, err)
	}
	return measurements, nil
}
