package postgres

import (
	"database/sql"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
)

func (s *Store) InsertMeal(m models.Meal) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO meals (daily_log_id, date, meal_type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		m.DailyLogID, m.Date, m.MealType, m.Description).Scan(&id)
	if err != nil {
		return 0, apperrors.Store("insert", constants.TableMeals, 0, err)
	}
	logger.Debug("Inserted meal", "id", id, "daily_log_id", m.DailyLogID, "type", m.MealType)
	return id, nil
}

func (s *Store) ListMeals() ([]models.Meal, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id, daily_log_id, date, meal_type, description FROM meals ORDER BY id`)
	if err != nil {
		return nil, apperrors.Store("list", constants.TableMeals, 0, err)
	}
	defer rows.Close()

	meals := []models.Meal{}
	for rows.Next() {
		var m models.Meal
		var parentID sql.NullInt64
		if err := rows.Scan(&m.ID, &parentID, &m.Date, &m.MealType, &m.Description); err != nil {
			return nil, apperrors.Store("list", constants.TableMeals, 0, err)
		}
		m.DailyLogID = parentID.Int64
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store("list", constants.TableMeals, 0, err)
	}
	return meals, nil
}
