package logs

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/utils"
	"github.com/julianstephens/healthlit/internal/workflow"
)

// LogEditCmd overwrites a daily log. Flags left unset keep the stored value.
type LogEditCmd struct {
	ID           int64    `arg:"" help:"Daily log ID."`
	Date         *string  `short:"d" help:"New date (YYYY-MM-DD)."`
	SleepQuality *int     `short:"q" name:"sleep-quality" help:"Sleep quality (0-100)."`
	SleepHours   *string  `name:"sleep-hours" help:"Hours slept, free text."`
	Exercise     *string  `short:"e" help:"Type of exercise done."`
	Intensity    *string  `short:"i" help:"Exercise intensity (None, Low, Moderate, High)."`
	Water        *string  `short:"w" help:"Water intake (Little, Moderate, Plenty)."`
	Alcohol      *string  `short:"a" help:"Alcohol amount (None, Little, Moderate, Plenty)."`
	Drink        *string  `help:"Type of alcoholic drink."`
	Weight       *float64 `help:"Weight in kg."`
	BodyScore    *float64 `name:"body-score" help:"Body score."`
}

// apply copies the set flags over the form values.
func (c *LogEditCmd) apply(form models.DailyLog) (models.DailyLog, error) {
	if c.Date != nil {
		date, err := utils.NormalizeDate(*c.Date)
		if err != nil {
			return form, err
		}
		form.Date = date
	}
	if c.SleepQuality != nil {
		form.SleepQuality = *c.SleepQuality
	}
	if c.SleepHours != nil {
		form.SleepHours = *c.SleepHours
	}
	if c.Exercise != nil {
		form.ExerciseType = *c.Exercise
	}
	if c.Intensity != nil {
		v, ok := models.ParseExerciseIntensity(*c.Intensity)
		if !ok {
			return form, fmt.Errorf("unknown exercise intensity %q", *c.Intensity)
		}
		form.ExerciseIntensity = v
	}
	if c.Water != nil {
		v, ok := models.ParseWaterIntake(*c.Water)
		if !ok {
			return form, fmt.Errorf("unknown water intake %q", *c.Water)
		}
		form.WaterIntake = v
	}
	if c.Alcohol != nil {
		v, ok := models.ParseDrinkAmount(*c.Alcohol)
		if !ok {
			return form, fmt.Errorf("unknown alcohol amount %q", *c.Alcohol)
		}
		form.AlcoholAmount = v
	}
	if c.Drink != nil {
		form.AlcoholType = *c.Drink
	}
	if c.Weight != nil {
		form.WeightKg = *c.Weight
	}
	if c.BodyScore != nil {
		form.BodyScore = *c.BodyScore
	}
	return form, nil
}

func (c *LogEditCmd) Run(ctx *cli.Context) error {
	session, err := selectLog(ctx, c.ID)
	if err != nil {
		return err
	}

	updated, err := c.apply(session.Form)
	if err != nil {
		return err
	}
	if updated == session.Form {
		ctx.Println("Nothing to change")
		return nil
	}

	session, err = workflow.Handle(session, workflow.Update{Log: updated}, workflow.Deps{Store: ctx.Store})
	if err != nil {
		return fmt.Errorf("failed to update daily log %d: %w", c.ID, err)
	}
	ctx.Printf("Updated daily log %d (%d row(s) affected)\n", c.ID, session.Affected)
	return nil
}

type LogDeleteCmd struct {
	ID int64 `arg:"" help:"Daily log ID."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	session, err := selectLog(ctx, c.ID)
	if err != nil {
		return err
	}

	session, err = workflow.Handle(session, workflow.Delete{}, workflow.Deps{Store: ctx.Store})
	if err != nil {
		return fmt.Errorf("failed to delete daily log %d: %w", c.ID, err)
	}
	ctx.Printf("Deleted daily log %d (%d row(s) affected)\n", c.ID, session.Affected)
	ctx.Println("Meals and measurements attached to it were kept. Run 'doctor' to list them.")
	return nil
}

// selectLog enters Editing and selects id from the current, unfiltered logs.
func selectLog(ctx *cli.Context, id int64) (workflow.Session, error) {
	snap, err := tracker.Reload(ctx.Store)
	if err != nil {
		return workflow.Session{}, err
	}
	deps := workflow.Deps{Store: ctx.Store}
	session, err := workflow.Handle(workflow.Session{}, workflow.Toggle{}, deps)
	if err != nil {
		return session, err
	}
	return workflow.Handle(session, workflow.Select{ID: id, Loaded: snap.DailyLogs}, deps)
}
