package models

// Snapshot holds full-table reads of all three tables in storage order
type Snapshot struct {
	DailyLogs    []DailyLog
	Meals        []Meal
	Measurements []Measurement
}

// FindDailyLog returns the log with id from the snapshot.
func (s Snapshot) FindDailyLog(id int64) (DailyLog, bool) {
	for _, l := range s.DailyLogs {
		if l.ID == id {
			return l, true
		}
	}
	return DailyLog{}, false
}
