// Package report renders the glucose and uric acid series as terminal line
// charts and as a PDF document.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthlit/internal/filter"
)

const (
	minChartWidth  = 10
	minChartHeight = 3
	axisLabelWidth = 8

	markPoint = '●'
	markLine  = '·'
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240"))
)

// RenderLineChart plots points left to right in record order, scaled to the
// min/max of their values.
func RenderLineChart(title string, points []filter.Point, width, height int) string {
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(points) == 0 {
		b.WriteString(emptyStyle.Render("no measurements in range"))
		return b.String()
	}

	lo, hi := bounds(points)
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	col := func(i int) int {
		if len(points) == 1 {
			return 0
		}
		return i * (width - 1) / (len(points) - 1)
	}
	row := func(v float64) int {
		if hi == lo {
			return height / 2
		}
		return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	}

	for i := 1; i < len(points); i++ {
		x0, x1 := col(i-1), col(i)
		y0, y1 := float64(row(points[i-1].Value)), float64(row(points[i].Value))
		for x := x0 + 1; x < x1; x++ {
			y := y0 + (y1-y0)*float64(x-x0)/float64(x1-x0)
			grid[int(math.Round(y))][x] = markLine
		}
	}
	for i, p := range points {
		grid[row(p.Value)][col(i)] = markPoint
	}

	for r, cells := range grid {
		label := strings.Repeat(" ", axisLabelWidth)
		switch r {
		case 0:
			label = fmt.Sprintf("%*.1f", axisLabelWidth, hi)
		case height - 1:
			label = fmt.Sprintf("%*.1f", axisLabelWidth, lo)
		}
		b.WriteString(axisStyle.Render(label + " ┤"))
		b.WriteString(lineStyle.Render(string(cells)))
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", axisLabelWidth) + " └" + strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(xLabels(points, width)))
	return b.String()
}

func bounds(points []filter.Point) (float64, float64) {
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	return lo, hi
}

// xLabels puts the first date under the left edge and the last under the right.
func xLabels(points []filter.Point, width int) string {
	pad := strings.Repeat(" ", axisLabelWidth+2)
	first := points[0].Date
	last := points[len(points)-1].Date
	if len(points) == 1 || first == last {
		return pad + first
	}
	gap := width - len(first) - len(last)
	if gap < 1 {
		return pad + first + " … " + last
	}
	return pad + first + strings.Repeat(" ", gap) + last
}

// RenderCharts renders the glucose and uric acid charts for result.
func RenderCharts(result filter.Result, width, height int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderLineChart("Glucose over time", filter.GlucoseSeries(result), width, height),
		"",
		RenderLineChart("Uric acid over time", filter.UricAcidSeries(result), width, height),
	)
}
