package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/healthlit/internal/models"
)

// ConflictType represents the type of integrity problem
type ConflictType string

const (
	ConflictOrphanedMeal        ConflictType = "orphaned_meal"
	ConflictOrphanedMeasurement ConflictType = "orphaned_measurement"
	ConflictDateMismatch        ConflictType = "date_mismatch"
	ConflictInvalidRecord       ConflictType = "invalid_record"
	ConflictSharedDate          ConflictType = "shared_date"
)

// Conflict represents a detected problem in the stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Table       string
	ID          int64
	Date        string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of type t.
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No integrity problems detected."
	}

	var b strings.Builder
	b.WriteString("Integrity problems detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// CheckIntegrity reports children whose parent is gone or whose date no
// longer matches their parent, rows that fail range validation, and dates
// shared by several daily logs. It never modifies data.
func CheckIntegrity(snap models.Snapshot) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	parents := make(map[int64]models.DailyLog, len(snap.DailyLogs))
	byDate := make(map[string][]int64)
	for _, l := range snap.DailyLogs {
		parents[l.ID] = l
		byDate[l.Date] = append(byDate[l.Date], l.ID)
		if err := l.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidRecord,
				Description: fmt.Sprintf("Daily log %d is invalid: %v", l.ID, err),
				Table:       "daily_logs",
				ID:          l.ID,
				Date:        l.Date,
			})
		}
	}

	for _, m := range snap.Meals {
		parent, ok := parents[m.DailyLogID]
		switch {
		case !ok:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedMeal,
				Description: fmt.Sprintf("Meal %d (%s, %s) references missing daily log %d", m.ID, m.MealType, m.Date, m.DailyLogID),
				Table:       "meals",
				ID:          m.ID,
				Date:        m.Date,
			})
		case parent.Date != m.Date:
			result.Conflicts = append(result.Conflicts, dateMismatch("meals", "Meal", m.ID, m.Date, parent))
		}
	}

	for _, m := range snap.Measurements {
		parent, ok := parents[m.DailyLogID]
		switch {
		case !ok:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedMeasurement,
				Description: fmt.Sprintf("Measurement %d (%s %s) references missing daily log %d", m.ID, m.Date, m.Time, m.DailyLogID),
				Table:       "measurements",
				ID:          m.ID,
				Date:        m.Date,
			})
		case parent.Date != m.Date:
			result.Conflicts = append(result.Conflicts, dateMismatch("measurements", "Measurement", m.ID, m.Date, parent))
		}
	}

	dates := make([]string, 0, len(byDate))
	for date, ids := range byDate {
		if len(ids) > 1 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	for _, date := range dates {
		ids := byDate[date]
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictSharedDate,
			Description: fmt.Sprintf("%d daily logs share %s (IDs: %v); new entries attach to %d", len(ids), date, ids, ids[len(ids)-1]),
			Table:       "daily_logs",
			ID:          ids[len(ids)-1],
			Date:        date,
		})
	}

	return result
}

func dateMismatch(table, kind string, id int64, date string, parent models.DailyLog) Conflict {
	return Conflict{
		Type:        ConflictDateMismatch,
		Description: fmt.Sprintf("%s %d is dated %s but its daily log %d is dated %s", kind, id, date, parent.ID, parent.Date),
		Table:       table,
		ID:          id,
		Date:        date,
	}
}
