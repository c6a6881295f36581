package views

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/constants"
	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/report"
	"github.com/julianstephens/healthlit/internal/tracker"
)

// load reads all three tables and applies the flags.
func load(ctx *cli.Context, flags cli.FilterFlags) (filter.Result, error) {
	spec, err := flags.Spec()
	if err != nil {
		return filter.Result{}, err
	}
	snap, err := tracker.Reload(ctx.Store)
	if err != nil {
		return filter.Result{}, err
	}
	return filter.Apply(snap, spec), nil
}

// ViewCmd prints the filtered tables.
type ViewCmd struct {
	cli.FilterFlags `embed:""`

	Table string `short:"t" enum:"all,logs,meals,measurements" default:"all" help:"Which table to show (all, logs, meals, measurements)."`
}

func (c *ViewCmd) Run(ctx *cli.Context) error {
	result, err := load(ctx, c.FilterFlags)
	if err != nil {
		return err
	}

	if c.Table == "all" || c.Table == "logs" {
		ctx.Printf("Daily logs (%d)\n", len(result.DailyLogs))
		ctx.Println(cli.RenderTable(cli.DailyLogHeaders, cli.DailyLogRows(result.DailyLogs)))
	}
	if c.Table == "all" || c.Table == "meals" {
		ctx.Printf("Meals (%d)\n", len(result.Meals))
		ctx.Println(cli.RenderTable(cli.MealHeaders, cli.MealRows(result.Meals)))
	}
	if c.Table == "all" || c.Table == "measurements" {
		ctx.Printf("Measurements (%d)\n", len(result.Measurements))
		ctx.Println(cli.RenderTable(cli.MeasurementHeaders, cli.MeasurementRows(result.Measurements)))
	}
	return nil
}

// ChartCmd draws glucose and uric acid over the filtered measurements.
type ChartCmd struct {
	cli.FilterFlags `embed:""`

	Width  int    `short:"W" default:"60" help:"Plot width in columns."`
	Height int    `short:"H" default:"12" help:"Plot height in rows."`
	PDF    string `name:"pdf" type:"path" help:"Also write the report to this PDF file."`
}

func (c *ChartCmd) Run(ctx *cli.Context) error {
	result, err := load(ctx, c.FilterFlags)
	if err != nil {
		return err
	}

	width, height := c.Width, c.Height
	if width <= 0 {
		width = constants.DefaultChartWidth
	}
	if height <= 0 {
		height = constants.DefaultChartHeight
	}
	ctx.Println(report.RenderCharts(result, width, height))

	if c.PDF != "" {
		if err := report.WritePDF(c.PDF, result); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		ctx.Printf("Wrote report to %s\n", c.PDF)
	}
	return nil
}
