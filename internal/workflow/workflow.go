// Package workflow is the Viewing/Editing state machine behind the edit toggle.
// A Session is a plain value: callers keep it and pass it back to Handle.
package workflow

import (
	"errors"
	"fmt"

	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage"
	"github.com/julianstephens/healthlit/internal/tracker"
)

type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

var (
	ErrInvalidTransition = errors.New("action not allowed in current state")
	ErrUnknownLog        = errors.New("daily log not in loaded set")
)

// Session is the edit state. Selected is 0 when nothing is selected. Form
// holds the values shown in the edit form for the selected log. Affected is the
// row count reported by the last Update or Delete.
type Session struct {
	State    State
	Selected int64
	Form     models.DailyLog
	Affected int64
}

// HasSelection reports whether a daily log is selected for editing.
func (s Session) HasSelection() bool {
	return s.State == Editing && s.Selected != 0
}

type Event interface {
	event()
}

// Toggle switches between Viewing and Editing.
type Toggle struct{}

// Select picks a daily log from the loaded, unfiltered set.
type Select struct {
	ID     int64
	Loaded []models.DailyLog
}

// Update overwrites the selected log with Log. Log.ID is ignored.
type Update struct {
	Log models.DailyLog
}

// Delete removes the selected log.
type Delete struct{}

func (Toggle) event() {}
func (Select) event() {}
func (Update) event() {}
func (Delete) event() {}

// Deps are the collaborators Handle writes through.
type Deps struct {
	Store storage.Provider
}

// Handle applies ev to s and returns the next session. On error the returned
// session equals s.
func Handle(s Session, ev Event, deps Deps) (Session, error) {
	switch ev := ev.(type) {
	case Toggle:
		if s.State == Editing {
			return Session{State: Viewing}, nil
		}
		return Session{State: Editing}, nil

	case Select:
		if s.State != Editing {
			return s, fmt.Errorf("%w: select while %s", ErrInvalidTransition, s.State)
		}
		for _, l := range ev.Loaded {
			if l.ID == ev.ID {
				return Session{State: Editing, Selected: l.ID, Form: l}, nil
			}
		}
		return s, fmt.Errorf("%w: %d", ErrUnknownLog, ev.ID)

	case Update:
		if !s.HasSelection() {
			return s, fmt.Errorf("%w: update without a selected log", ErrInvalidTransition)
		}
		log := ev.Log
		log.ID = s.Selected
		rows, err := tracker.UpdateDailyLog(deps.Store, log)
		if err != nil {
			return s, err
		}
		logger.Info("Updated daily log", "id", log.ID, "rows", rows)
		return Session{State: Editing, Selected: s.Selected, Form: log, Affected: rows}, nil

	case Delete:
		if !s.HasSelection() {
			return s, fmt.Errorf("%w: delete without a selected log", ErrInvalidTransition)
		}
		rows, err := tracker.DeleteDailyLog(deps.Store, s.Selected)
		if err != nil {
			return s, err
		}
		logger.Info("Deleted daily log", "id", s.Selected, "rows", rows)
		return Session{State: Editing, Affected: rows}, nil
	}

	return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
}
