package postgres

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/storage"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS daily_logs (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL,
		sleep_quality INTEGER NOT NULL DEFAULT 0,
		sleep_hours TEXT NOT NULL DEFAULT '',
		exercise_type TEXT NOT NULL DEFAULT '',
		exercise_intensity TEXT NOT NULL DEFAULT 'None',
		water_intake TEXT NOT NULL DEFAULT 'Little',
		alcohol_amount TEXT NOT NULL DEFAULT 'None',
		alcohol_type TEXT NOT NULL DEFAULT '',
		weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		body_score DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(date, id)`,
	`CREATE TABLE IF NOT EXISTS meals (
		id BIGSERIAL PRIMARY KEY,
		daily_log_id BIGINT,
		date TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS measurements (
		id BIGSERIAL PRIMARY KEY,
		daily_log_id BIGINT,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		glucose DOUBLE PRECISION NOT NULL DEFAULT 0,
		uric_acid DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
}

var tables = []string{constants.TableDailyLogs, constants.TableMeals, constants.TableMeasurements}

func (s *Store) ensureSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Reset(mode storage.ResetMode) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return apperrors.Store("reset", "all", 0, err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		stmt := "DELETE FROM " + table
		if mode == storage.ResetFull {
			stmt = "DROP TABLE IF EXISTS " + table
		}
		if _, err := tx.Exec(stmt); err != nil {
			return apperrors.Store("reset", table, 0, err)
		}
	}

	if mode == storage.ResetFull {
		for _, stmt := range schema {
			if _, err := tx.Exec(stmt); err != nil {
				return apperrors.Store("reset", "schema", 0, fmt.Errorf("recreate: %w", err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Store("reset", "all", 0, err)
	}
	logger.Warn("Store reset", "mode", mode.String(), "backend", "postgresql")
	return nil
}
