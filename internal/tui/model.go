package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/tui/components/charts"
	"github.com/julianstephens/healthlit/internal/tui/components/records"
	"github.com/julianstephens/healthlit/internal/workflow"
)

type Tab int

const (
	TabLogs Tab = iota
	TabMeals
	TabMeasurements
	TabCharts
	tabCount
)

var tabTitles = [tabCount]string{"Daily logs", "Meals", "Measurements", "Charts"}

type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirmDelete
)

type formKind int

const (
	formNone formKind = iota
	formAddLog
	formEditLog
	formAddMeal
	formAddMeasurement
	formFilter
)

// chrome is the number of lines taken by tabs, status and help.
const chrome = 6

type Model struct {
	store   storage.Provider
	snap    models.Snapshot
	spec    filter.Spec
	result  filter.Result
	session workflow.Session

	tab  Tab
	mode Mode
	keys KeyMap
	help help.Model

	logs         records.Model
	meals        records.Model
	measurements records.Model
	charts       charts.Model

	form            *huh.Form
	formKind        formKind
	logForm         *LogFormModel
	mealForm        *MealFormModel
	measurementForm *MeasurementFormModel
	filterForm      *FilterFormModel

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

func NewModel(store storage.Provider) (Model, error) {
	m := Model{
		store:        store,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		logs:         records.New(cli.DailyLogHeaders, "No daily logs. Press 'a' to add one.", 10),
		meals:        records.New(cli.MealHeaders, "No meals. Press 'a' to add one.", 10),
		measurements: records.New(cli.MeasurementHeaders, "No measurements. Press 'a' to add one.", 10),
		charts:       charts.New(80, 20),
	}
	if err := m.reload(); err != nil {
		return m, err
	}
	return m, nil
}

// reload rereads all three tables and reapplies the current filter.
func (m *Model) reload() error {
	snap, err := tracker.Reload(m.store)
	if err != nil {
		return err
	}
	m.snap = snap
	m.applyFilter()
	return nil
}

func (m *Model) applyFilter() {
	m.result = filter.Apply(m.snap, m.spec)
	// Edit targets come from the loaded set, so the filter is lifted while editing.
	logs := m.result.DailyLogs
	if m.session.State == workflow.Editing {
		logs = m.snap.DailyLogs
	}
	m.logs.SetRows(cli.DailyLogRows(logs))
	m.meals.SetRows(cli.MealRows(m.result.Meals))
	m.measurements.SetRows(cli.MeasurementRows(m.result.Measurements))
	m.charts.SetResult(m.result)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.tab {
	case TabLogs:
		keys = append(keys, m.keys.Add, m.keys.Edit)
		if m.session.State == workflow.Editing {
			keys = append(keys, m.keys.Enter, m.keys.Delete)
		}
	case TabMeals, TabMeasurements:
		keys = append(keys, m.keys.Add)
	}
	return append(keys, m.keys.Filter)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Reload}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	actions := []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Enter, m.keys.Delete}
	filtering := []key.Binding{m.keys.Filter, m.keys.ClearFilter}
	return [][]key.Binding{global, navigation, actions, filtering}
}

func (m Model) Init() tea.Cmd {
	return nil
}
