// Package records is a table of stored rows keyed by their database id.
package records

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxColumnWidth = 28
	defaultWidth   = 80
)

type Model struct {
	table   table.Model
	headers []string
	empty   string
}

func New(headers []string, empty string, height int) Model {
	t := table.New(
		table.WithColumns(columns(headers, nil)),
		table.WithFocused(true),
		table.WithHeight(max(height, 1)),
		table.WithWidth(defaultWidth),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t, headers: headers, empty: empty}
}

// SetRows replaces the table content. The first cell of every row is the id.
func (m *Model) SetRows(rows [][]string) {
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}
	m.table.SetColumns(columns(m.headers, rows))
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// SelectedID returns the id of the row under the cursor.
func (m Model) SelectedID() (int64, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (m Model) Len() int {
	return len(m.table.Rows())
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(max(height, 1))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Len() == 0 {
		return m.empty
	}
	return m.table.View()
}

// columns sizes each column to its widest cell.
func columns(headers []string, rows [][]string) []table.Column {
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, r := range rows {
			if i < len(r) {
				width = max(width, lipgloss.Width(r[i]))
			}
		}
		cols[i] = table.Column{Title: h, Width: min(width, maxColumnWidth)}
	}
	return cols
}
