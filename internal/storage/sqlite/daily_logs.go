package sqlite

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage"
)

const dailyLogColumns = `id, date, sleep_quality, sleep_hours, exercise_type, exercise_intensity,
	water_intake, alcohol_amount, alcohol_type, weight_kg, body_score`

type scanner interface {
	Scan(dest ...any) error
}

func scanDailyLog(row scanner) (models.DailyLog, error) {
	var l models.DailyLog
	err := row.Scan(&l.ID, &l.Date, &l.SleepQuality, &l.SleepHours, &l.ExerciseType,
		&l.ExerciseIntensity, &l.WaterIntake, &l.AlcoholAmount, &l.AlcoholType,
		&l.WeightKg, &l.BodyScore)
	return l, err
}

func (s *Store) InsertDailyLog(l models.DailyLog) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(`
		INSERT INTO daily_logs (date, sleep_quality, sleep_hours, exercise_type, exercise_intensity,
			water_intake, alcohol_amount, alcohol_type, weight_kg, body_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Date, l.SleepQuality, l.SleepHours, l.ExerciseType, l.ExerciseIntensity,
		l.WaterIntake, l.AlcoholAmount, l.AlcoholType, l.WeightKg, l.BodyScore)
	if err != nil {
		return 0, apperrors.Store("insert", constants.TableDailyLogs, 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.Store("insert", constants.TableDailyLogs, 0, err)
	}
	logger.Debug("Inserted daily log", "id", id, "date", l.Date)
	return id, nil
}

func (s *Store) FindLatestDailyLogIDByDate(date string) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	var id int64
	err := s.db.QueryRow(`SELECT id FROM daily_logs WHERE date = ? ORDER BY id DESC LIMIT 1`, date).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.NoParent(date)
	}
	if err != nil {
		return 0, apperrors.Store("lookup", constants.TableDailyLogs, 0, err)
	}
	return id, nil
}

func (s *Store) GetDailyLog(id int64) (models.DailyLog, error) {
	if err := s.ready(); err != nil {
		return models.DailyLog{}, err
	}

	l, err := scanDailyLog(s.db.QueryRow(`SELECT `+dailyLogColumns+` FROM daily_logs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyLog{}, storage.ErrNotFound
	}
	if err != nil {
		return models.DailyLog{}, apperrors.Store("get", constants.TableDailyLogs, id, err)
	}
	return l, nil
}

func (s *Store) UpdateDailyLog(l models.DailyLog) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(`
		UPDATE daily_logs
		SET date = ?, sleep_quality = ?, sleep_hours = ?, exercise_type = ?, exercise_intensity = ?,
			water_intake = ?, alcohol_amount = ?, alcohol_type = ?, weight_kg = ?, body_score = ?
		WHERE id = ?`,
		l.Date, l.SleepQuality, l.SleepHours, l.ExerciseType, l.ExerciseIntensity,
		l.WaterIntake, l.AlcoholAmount, l.AlcoholType, l.WeightKg, l.BodyScore, l.ID)
	if err != nil {
		return 0, apperrors.Store("update", constants.TableDailyLogs, l.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Store("update", constants.TableDailyLogs, l.ID, err)
	}
	logger.Debug("Updated daily log", "id", l.ID, "rows", rows)
	return rows, nil
}

func (s *Store) DeleteDailyLog(id int64) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(`DELETE FROM daily_logs WHERE id = ?`, id)
	if err != nil {
		return 0, apperrors.Store("delete", constants.TableDailyLogs, id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Store("delete", constants.TableDailyLogs, id, err)
	}
	logger.Debug("Deleted daily log", "id", id, "rows", rows)
	return rows, nil
}

func (s *Store) ListDailyLogs() ([]models.DailyLog, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT ` + dailyLogColumns + ` FROM daily_logs ORDER BY id`)
	if err != nil {
		return nil, apperrors.Store("list", constants.TableDailyLogs, 0, err)
	}
	defer rows.Close()

	logs := []models.DailyLog{}
	for rows.Next() {
		l, err := scanDailyLog(rows)
		if err != nil {
			return nil, apperrors.Store("list", constants.TableDailyLogs, 0, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store("list", constants.TableDailyLogs, 0, err)
	}
	return logs, nil
}
