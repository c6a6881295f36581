package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/workflow"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	switch m.mode {
	case ModeForm:
		return m.updateForm(msg)
	case ModeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabLogs:
		m.logs, cmd = m.logs.Update(msg)
	case TabMeals:
		m.meals, cmd = m.meals.Update(msg)
	case TabMeasurements:
		m.measurements, cmd = m.measurements.Update(msg)
	case TabCharts:
		m.charts, cmd = m.charts.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	body := max(height-chrome, 3)
	m.logs.SetSize(width, body)
	m.meals.SetSize(width, body)
	m.measurements.SetSize(width, body)
	m.charts.SetSize(width, body)
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keys.ShiftTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reload):
		if err := m.reload(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Reloaded")
		}
	case key.Matches(msg, m.keys.Edit):
		m.toggleEdit()
	case key.Matches(msg, m.keys.Add):
		return true, m.openAddForm()
	case key.Matches(msg, m.keys.Filter):
		m.filterForm = NewFilterFormModel(m.spec)
		return true, m.openForm(formFilter, NewFilterForm(m.filterForm))
	case key.Matches(msg, m.keys.ClearFilter):
		m.spec = filter.Spec{}
		m.applyFilter()
		m.setStatus("Filter cleared")
	case (key.Matches(msg, m.keys.Enter) || key.Matches(msg, m.keys.Delete)) && m.session.State != workflow.Editing:
		m.setStatus("Press 'e' to enter edit mode")
	case key.Matches(msg, m.keys.Enter) && m.tab == TabLogs:
		if !m.selectCurrentLog() {
			return true, nil
		}
		m.logForm = NewLogFormModel(m.session.Form)
		return true, m.openForm(formEditLog, NewLogForm(m.logForm, fmt.Sprintf("Edit daily log %d", m.session.Selected)))
	case key.Matches(msg, m.keys.Delete) && m.tab == TabLogs:
		if m.selectCurrentLog() {
			m.mode = ModeConfirmDelete
		}
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) toggleEdit() {
	session, err := workflow.Handle(m.session, workflow.Toggle{}, workflow.Deps{Store: m.store})
	if err != nil {
		m.setError(err)
		return
	}
	m.session = session
	m.applyFilter()
	if session.State == workflow.Editing {
		m.tab = TabLogs
		m.setStatus("Edit mode: enter edits the selected log, d deletes it")
	} else {
		m.setStatus("Edit mode off")
	}
}

// selectCurrentLog selects the log under the cursor from the unfiltered set.
func (m *Model) selectCurrentLog() bool {
	id, ok := m.logs.SelectedID()
	if !ok {
		m.setStatus("No daily log selected")
		return false
	}
	session, err := workflow.Handle(m.session, workflow.Select{ID: id, Loaded: m.snap.DailyLogs}, workflow.Deps{Store: m.store})
	if err != nil {
		m.setError(err)
		return false
	}
	m.session = session
	return true
}

func (m *Model) openAddForm() tea.Cmd {
	switch m.tab {
	case TabLogs:
		m.logForm = NewLogFormModel(newDailyLog())
		return m.openForm(formAddLog, NewLogForm(m.logForm, "Add daily log"))
	case TabMeals:
		m.mealForm = NewMealFormModel()
		return m.openForm(formAddMeal, NewMealForm(m.mealForm))
	case TabMeasurements:
		m.measurementForm = NewMeasurementFormModel()
		return m.openForm(formAddMeasurement, NewMeasurementForm(m.measurementForm))
	}
	return nil
}

func (m *Model) openForm(kind formKind, form *huh.Form) tea.Cmd {
	m.form = form
	m.formKind = kind
	m.mode = ModeForm
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.mode = ModeBrowse
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

// submitForm writes the completed form. Errors land in the status line.
func (m *Model) submitForm() {
	switch m.formKind {
	case formAddLog:
		log, err := m.logForm.DailyLog()
		if err != nil {
			m.setError(err)
			return
		}
		id, err := tracker.AddDailyLog(m.store, log)
		if err != nil {
			m.setError(err)
			return
		}
		m.setStatus(fmt.Sprintf("Saved daily log %d for %s", id, log.Date))

	case formEditLog:
		log, err := m.logForm.DailyLog()
		if err != nil {
			m.setError(err)
			return
		}
		session, err := workflow.Handle(m.session, workflow.Update{Log: log}, workflow.Deps{Store: m.store})
		if err != nil {
			m.setError(err)
			return
		}
		m.session = session
		m.setStatus(fmt.Sprintf("Updated daily log %d (%d row(s) affected)", session.Selected, session.Affected))

	case formAddMeal:
		meal, err := m.mealForm.Meal()
		if err != nil {
			m.setError(err)
			return
		}
		id, err := tracker.AddMeal(m.store, meal)
		if err != nil {
			m.setError(err)
			return
		}
		m.setStatus(fmt.Sprintf("Saved %s %d for %s", meal.MealType, id, meal.Date))

	case formAddMeasurement:
		measurement, err := m.measurementForm.Measurement()
		if err != nil {
			m.setError(err)
			return
		}
		id, err := tracker.AddMeasurement(m.store, measurement)
		if err != nil {
			m.setError(err)
			return
		}
		m.setStatus(fmt.Sprintf("Saved measurement %d for %s %s", id, measurement.Date, measurement.Time))

	case formFilter:
		spec, err := m.filterForm.Spec()
		if err != nil {
			m.setError(err)
			return
		}
		m.spec = spec
		m.applyFilter()
		m.setStatus("Filter applied")
		return
	}

	if err := m.reload(); err != nil {
		m.setError(err)
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		id := m.session.Selected
		session, err := workflow.Handle(m.session, workflow.Delete{}, workflow.Deps{Store: m.store})
		m.mode = ModeBrowse
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.session = session
		if err := m.reload(); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Deleted daily log %d (%d row(s) affected)", id, session.Affected))
	case "n", "N", "esc", "q":
		m.mode = ModeBrowse
	}
	return m, nil
}
