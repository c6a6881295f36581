package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/storage"
)

type Context struct {
	Store storage.Provider
	// Out receives command output. Nil means stdout.
	Out io.Writer
}

func (c *Context) writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.writer(), args...)
}

// FilterFlags are the filter options shared by view and chart.
type FilterFlags struct {
	From      string   `help:"Start of the date range (YYYY-MM-DD). Requires --to."`
	To        string   `help:"End of the date range (YYYY-MM-DD). Requires --from."`
	MealType  []string `name:"meal-type" help:"Only meals of these types (Breakfast, Lunch, Dinner). Repeatable or comma-separated."`
	Intensity []string `help:"Only daily logs with these exercise intensities (None, Low, Moderate, High). Repeatable or comma-separated."`
}

// Spec converts the flags into a validated filter spec.
func (f FilterFlags) Spec() (filter.Spec, error) {
	var spec filter.Spec

	if (f.From == "") != (f.To == "") {
		return spec, fmt.Errorf("--from and --to must be given together")
	}
	if f.From != "" {
		spec.DateRange = &filter.DateRange{Start: f.From, End: f.To}
	}

	for _, v := range f.MealType {
		mt, ok := models.ParseMealType(v)
		if !ok {
			return spec, fmt.Errorf("unknown meal type %q (want Breakfast, Lunch or Dinner)", v)
		}
		spec.MealTypes = append(spec.MealTypes, mt)
	}
	for _, v := range f.Intensity {
		in, ok := models.ParseExerciseIntensity(v)
		if !ok {
			return spec, fmt.Errorf("unknown exercise intensity %q (want None, Low, Moderate or High)", v)
		}
		spec.Intensities = append(spec.Intensities, in)
	}

	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderTable lays out rows under headers with a rounded border.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

func DailyLogRows(logs []models.DailyLog) [][]string {
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			fmt.Sprint(l.ID), l.Date, fmt.Sprint(l.SleepQuality), l.SleepHours,
			l.ExerciseType, string(l.ExerciseIntensity), string(l.WaterIntake),
			string(l.AlcoholAmount), l.AlcoholType,
			fmt.Sprintf("%.1f", l.WeightKg), fmt.Sprintf("%.1f", l.BodyScore),
		})
	}
	return rows
}

var DailyLogHeaders = []string{"ID", "Date", "Sleep", "Hours", "Exercise", "Intensity", "Water", "Alcohol", "Drink", "Weight", "Body"}

func MealRows(meals []models.Meal) [][]string {
	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, []string{fmt.Sprint(m.ID), fmt.Sprint(m.DailyLogID), m.Date, string(m.MealType), m.Description})
	}
	return rows
}

var MealHeaders = []string{"ID", "Log", "Date", "Type", "Description"}

func MeasurementRows(measurements []models.Measurement) [][]string {
	rows := make([][]string, 0, len(measurements))
	for _, m := range measurements {
		rows = append(rows, []string{
			fmt.Sprint(m.ID), fmt.Sprint(m.DailyLogID), m.Date, m.Time,
			fmt.Sprintf("%.1f", m.Glucose), fmt.Sprintf("%.2f", m.UricAcid),
		})
	}
	return rows
}

var MeasurementHeaders = []string{"ID", "Log", "Date", "Time", "Glucose", "Uric acid"}
