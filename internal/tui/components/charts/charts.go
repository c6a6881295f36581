// Package charts shows the glucose and uric acid charts in a scrollable viewport.
package charts

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/healthlit/internal/constants"
	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/report"
)

// chartChrome is the width taken by the y axis labels and margins.
const chartChrome = 12

type Model struct {
	viewport viewport.Model
	result   filter.Result
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// SetResult redraws both charts for result.
func (m *Model) SetResult(result filter.Result) {
	m.result = result
	m.render()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) render() {
	width := constants.DefaultChartWidth
	if m.width > chartChrome {
		width = m.width - chartChrome
	}
	m.viewport.SetContent(report.RenderCharts(m.result, width, constants.DefaultChartHeight))
}
