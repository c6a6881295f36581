package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
)

const jsonStoreVersion = 1

// Document is the on-disk layout of a JSON store.
type Document struct {
	Version      int                  `json:"version"`
	NextIDs      Sequences            `json:"next_ids"`
	DailyLogs    []models.DailyLog    `json:"daily_logs"`
	Meals        []models.Meal        `json:"meals"`
	Measurements []models.Measurement `json:"measurements"`
}

// Sequences hold the next id per table. They only grow, so ids of deleted
// rows are never handed out again.
type Sequences struct {
	DailyLogs    int64 `json:"daily_logs"`
	Meals        int64 `json:"meals"`
	Measurements int64 `json:"measurements"`
}

var _ Provider = (*JSONStore)(nil)

// JSONStore keeps the three tables in a single JSON file and rewrites it on every change.
type JSONStore struct {
	path string
	doc  *Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyDocument() *Document {
	return &Document{
		Version:      jsonStoreVersion,
		NextIDs:      Sequences{DailyLogs: 1, Meals: 1, Measurements: 1},
		DailyLogs:    []models.DailyLog{},
		Meals:        []models.Meal{},
		Measurements: []models.Measurement{},
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// An existing file is kept, matching the SQLite backend.
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	if err := s.commit(emptyDocument()); err != nil {
		return err
	}
	logger.Info("Initialized JSON store", "path", s.path)
	return nil
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	doc.normalize()
	s.doc = doc
	return nil
}

// normalize repairs nil slices and sequences that lag behind stored ids.
func (d *Document) normalize() {
	if d.DailyLogs == nil {
		d.DailyLogs = []models.DailyLog{}
	}
	if d.Meals == nil {
		d.Meals = []models.Meal{}
	}
	if d.Measurements == nil {
		d.Measurements = []models.Measurement{}
	}
	for _, l := range d.DailyLogs {
		d.NextIDs.DailyLogs = max(d.NextIDs.DailyLogs, l.ID+1)
	}
	for _, m := range d.Meals {
		d.NextIDs.Meals = max(d.NextIDs.Meals, m.ID+1)
	}
	for _, m := range d.Measurements {
		d.NextIDs.Measurements = max(d.NextIDs.Measurements, m.ID+1)
	}
}

// clone copies the document so a change can be written before it is kept.
func (d *Document) clone() *Document {
	c := *d
	c.DailyLogs = append([]models.DailyLog{}, d.DailyLogs...)
	c.Meals = append([]models.Meal{}, d.Meals...)
	c.Measurements = append([]models.Measurement{}, d.Measurements...)
	return &c
}

func (s *JSONStore) Close() error {
	s.doc = nil
	return nil
}

// commit writes next to disk and only then makes it the current document.
// A failed write leaves the in-memory state untouched.
func (s *JSONStore) commit(next *Document) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	s.doc = next
	return nil
}

func (s *JSONStore) ready() error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	return nil
}

func (s *JSONStore) Reset(mode ResetMode) error {
	if err := s.ready(); err != nil {
		return err
	}

	next := emptyDocument()
	if mode == ResetSoft {
		// Rows go, sequences stay.
		next.NextIDs = s.doc.NextIDs
	}
	if err := s.commit(next); err != nil {
		return apperrors.Store("reset", "all", 0, err)
	}
	logger.Warn("Store reset", "mode", mode.String(), "path", s.path)
	return nil
}

func (s *JSONStore) InsertDailyLog(l models.DailyLog) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	next := s.doc.clone()
	l.ID = next.NextIDs.DailyLogs
	next.NextIDs.DailyLogs++
	next.DailyLogs = append(next.DailyLogs, l)
	if err := s.commit(next); err != nil {
		return 0, apperrors.Store("insert", constants.TableDailyLogs, 0, err)
	}
	logger.Debug("Inserted daily log", "id", l.ID, "date", l.Date)
	return l.ID, nil
}

func (s *JSONStore) FindLatestDailyLogIDByDate(date string) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	var latest int64
	for _, l := range s.doc.DailyLogs {
		if l.Date == date && l.ID > latest {
			latest = l.ID
		}
	}
	if latest == 0 {
		return 0, apperrors.NoParent(date)
	}
	return latest, nil
}

func (s *JSONStore) indexOf(id int64) int {
	for i, l := range s.doc.DailyLogs {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *JSONStore) GetDailyLog(id int64) (models.DailyLog, error) {
	if err := s.ready(); err != nil {
		return models.DailyLog{}, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.DailyLog{}, ErrNotFound
	}
	return s.doc.DailyLogs[i], nil
}

func (s *JSONStore) UpdateDailyLog(l models.DailyLog) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	i := s.indexOf(l.ID)
	if i < 0 {
		return 0, nil
	}
	next := s.doc.clone()
	next.DailyLogs[i] = l
	if err := s.commit(next); err != nil {
		return 0, apperrors.Store("update", constants.TableDailyLogs, l.ID, err)
	}
	logger.Debug("Updated daily log", "id", l.ID, "rows", 1)
	return 1, nil
}

func (s *JSONStore) DeleteDailyLog(id int64) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	next := s.doc.clone()
	next.DailyLogs = append(next.DailyLogs[:i], next.DailyLogs[i+1:]...)
	if err := s.commit(next); err != nil {
		return 0, apperrors.Store("delete", constants.TableDailyLogs, id, err)
	}
	logger.Debug("Deleted daily log", "id", id, "rows", 1)
	return 1, nil
}

func (s *JSONStore) ListDailyLogs() ([]models.DailyLog, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return append([]models.DailyLog{}, s.doc.DailyLogs...), nil
}

func (s *JSONStore) InsertMeal(m models.Meal) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	next := s.doc.clone()
	m.ID = next.NextIDs.Meals
	next.NextIDs.Meals++
	next.Meals = append(next.Meals, m)
	if err := s.commit(next); err != nil {
		return 0, apperrors.Store("insert", constants.TableMeals, 0, err)
	}
	logger.Debug("Inserted meal", "id", m.ID, "daily_log_id", m.DailyLogID, "type", m.MealType)
	return m.ID, nil
}

func (s *JSONStore) ListMeals() ([]models.Meal, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return append([]models.Meal{}, s.doc.Meals...), nil
}

func (s *JSONStore) InsertMeasurement(m models.Measurement) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	next := s.doc.clone()
	m.ID = next.NextIDs.Measurements
	next.NextIDs.Measurements++
	next.Measurements = append(next.Measurements, m)
	if err := s.commit(next); err != nil {
		return 0, apperrors.Store("insert", constants.TableMeasurements, 0, err)
	}
	logger.Debug("Inserted measurement", "id", m.ID, "daily_log_id", m.DailyLogID, "date", m.Date, "time", m.Time)
	return m.ID, nil
}

func (s *JSONStore) ListMeasurements() ([]models.Measurement, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return append([]models.Measurement{}, s.doc.Measurements...), nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
