package logs

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/utils"
)

type LogAddCmd struct {
	Date         string  `short:"d" help:"Date of the entry (YYYY-MM-DD, today, yesterday)." default:"today"`
	SleepQuality int     `short:"q" name:"sleep-quality" help:"Sleep quality (0-100)." default:"0"`
	SleepHours   string  `name:"sleep-hours" help:"Hours slept, free text (e.g. 7h30)."`
	Exercise     string  `short:"e" help:"Type of exercise done."`
	Intensity    string  `short:"i" help:"Exercise intensity (None, Low, Moderate, High)." default:"None"`
	Water        string  `short:"w" help:"Water intake (Little, Moderate, Plenty)." default:"Little"`
	Alcohol      string  `short:"a" help:"Alcohol amount (None, Little, Moderate, Plenty)." default:"None"`
	Drink        string  `help:"Type of alcoholic drink."`
	Weight       float64 `help:"Weight in kg." default:"0"`
	BodyScore    float64 `name:"body-score" help:"Body score." default:"0"`

	log models.DailyLog
}

func (c *LogAddCmd) Validate() error {
	date, err := utils.NormalizeDate(c.Date)
	if err != nil {
		return err
	}
	intensity, ok := models.ParseExerciseIntensity(c.Intensity)
	if !ok {
		return fmt.Errorf("unknown exercise intensity %q (want None, Low, Moderate or High)", c.Intensity)
	}
	water, ok := models.ParseWaterIntake(c.Water)
	if !ok {
		return fmt.Errorf("unknown water intake %q (want Little, Moderate or Plenty)", c.Water)
	}
	alcohol, ok := models.ParseDrinkAmount(c.Alcohol)
	if !ok {
		return fmt.Errorf("unknown alcohol amount %q (want None, Little, Moderate or Plenty)", c.Alcohol)
	}

	c.log = models.DailyLog{
		Date:              date,
		SleepQuality:      c.SleepQuality,
		SleepHours:        c.SleepHours,
		ExerciseType:      c.Exercise,
		ExerciseIntensity: intensity,
		WaterIntake:       water,
		AlcoholAmount:     alcohol,
		AlcoholType:       c.Drink,
		WeightKg:          c.Weight,
		BodyScore:         c.BodyScore,
	}
	return c.log.Validate()
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	id, err := tracker.AddDailyLog(ctx.Store, c.log)
	if err != nil {
		return fmt.Errorf("failed to save daily log: %w", err)
	}
	ctx.Printf("Saved daily log %d for %s\n", id, c.log.Date)
	return nil
}
