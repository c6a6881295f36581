package logs

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
)

type LogListCmd struct {
	Date string `short:"d" help:"Only logs for this date (YYYY-MM-DD)."`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.ListDailyLogs()
	if err != nil {
		return fmt.Errorf("failed to list daily logs: %w", err)
	}

	if c.Date != "" {
		filtered := logs[:0]
		for _, l := range logs {
			if l.Date == c.Date {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}

	if len(logs) == 0 {
		ctx.Println("No daily logs found")
		return nil
	}
	ctx.Println(cli.RenderTable(cli.DailyLogHeaders, cli.DailyLogRows(logs)))
	return nil
}

type LogShowCmd struct {
	ID int64 `arg:"" help:"Daily log ID."`
}

func (c *LogShowCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Store.GetDailyLog(c.ID)
	if err != nil {
		return fmt.Errorf("failed to get daily log %d: %w", c.ID, err)
	}

	ctx.Printf("Daily log %d\n", l.ID)
	ctx.Printf("  Date:           %s\n", l.Date)
	ctx.Printf("  Sleep quality:  %d\n", l.SleepQuality)
	ctx.Printf("  Sleep hours:    %s\n", l.SleepHours)
	ctx.Printf("  Exercise:       %s (%s)\n", l.ExerciseType, l.ExerciseIntensity)
	ctx.Printf("  Water intake:   %s\n", l.WaterIntake)
	ctx.Printf("  Alcohol:        %s %s\n", l.AlcoholAmount, l.AlcoholType)
	ctx.Printf("  Weight (kg):    %.1f\n", l.WeightKg)
	ctx.Printf("  Body score:     %.1f\n", l.BodyScore)
	return nil
}
