package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthlit/internal/workflow"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.mode {
	case ModeForm:
		content = docStyle.Render(m.form.View())
	case ModeConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewTab()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles)+2)
	for i, title := range tabTitles {
		if m.tab == Tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	if m.session.State == workflow.Editing {
		tabs = append(tabs, " ", modeStyle.Render("EDITING"))
	}
	if desc := m.filterDescription(); desc != "" {
		if m.session.State == workflow.Editing {
			desc += " (logs unfiltered while editing)"
		}
		tabs = append(tabs, " ", filterStyle.Render(desc))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTab() string {
	switch m.tab {
	case TabMeals:
		return m.meals.View()
	case TabMeasurements:
		return m.measurements.View()
	case TabCharts:
		return m.charts.View()
	}
	return m.logs.View()
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("Error: " + m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-chrome, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete daily log %d (%s)?", m.session.Selected, m.session.Form.Date)),
			"Its meals and measurements are kept.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

// filterDescription summarizes the active filter for the tab bar.
func (m Model) filterDescription() string {
	if m.spec.IsEmpty() {
		return ""
	}
	var parts []string
	if r := m.spec.DateRange; r != nil {
		parts = append(parts, r.Start+" → "+r.End)
	}
	if len(m.spec.MealTypes) > 0 {
		types := make([]string, len(m.spec.MealTypes))
		for i, t := range m.spec.MealTypes {
			types[i] = string(t)
		}
		parts = append(parts, strings.Join(types, ","))
	}
	if len(m.spec.Intensities) > 0 {
		levels := make([]string, len(m.spec.Intensities))
		for i, l := range m.spec.Intensities {
			levels[i] = string(l)
		}
		parts = append(parts, strings.Join(levels, ","))
	}
	return "filter: " + strings.Join(parts, " | ")
}
