package measurements

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/utils"
)

// MeasureAddCmd records a glucose and uric acid reading.
type MeasureAddCmd struct {
	Glucose  float64 `short:"g" required:"" help:"Blood glucose reading."`
	UricAcid float64 `short:"u" name:"uric-acid" required:"" help:"Uric acid reading."`
	Date     string  `short:"d" help:"Date of the reading (YYYY-MM-DD, today, yesterday)." default:"today"`
	Time     string  `short:"t" help:"Time of the reading (HH:MM or HH:MM:SS, now)." default:"now"`

	measurement models.Measurement
}

func (c *MeasureAddCmd) Validate() error {
	date, err := utils.NormalizeDate(c.Date)
	if err != nil {
		return err
	}
	tod, err := utils.NormalizeTime(c.Time)
	if err != nil {
		return err
	}
	c.measurement = models.Measurement{Date: date, Time: tod, Glucose: c.Glucose, UricAcid: c.UricAcid}
	return c.measurement.Validate()
}

func (c *MeasureAddCmd) Run(ctx *cli.Context) error {
	id, err := tracker.AddMeasurement(ctx.Store, c.measurement)
	if err != nil {
		return fmt.Errorf("failed to save measurement: %w", err)
	}
	ctx.Printf("Saved measurement %d for %s %s\n", id, c.measurement.Date, c.measurement.Time)
	return nil
}

type MeasureListCmd struct {
	Date string `short:"d" help:"Only readings on this date (YYYY-MM-DD)."`
}

func (c *MeasureListCmd) Run(ctx *cli.Context) error {
	measurements, err := ctx.Store.ListMeasurements()
	if err != nil {
		return fmt.Errorf("failed to list measurements: %w", err)
	}

	if c.Date != "" {
		filtered := measurements[:0]
		for _, m := range measurements {
			if m.Date == c.Date {
				filtered = append(filtered, m)
			}
		}
		measurements = filtered
	}

	if len(measurements) == 0 {
		ctx.Println("No measurements found")
		return nil
	}
	ctx.Println(cli.RenderTable(cli.MeasurementHeaders, cli.MeasurementRows(measurements)))
	return nil
}
