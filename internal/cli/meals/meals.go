package meals

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/utils"
)

// MealAddCmd records a meal against the latest daily log of its date.
type MealAddCmd struct {
	Type        string `arg:"" help:"Meal type (Breakfast, Lunch, Dinner)."`
	Description string `arg:"" optional:"" help:"What was eaten."`
	Date        string `short:"d" help:"Date of the meal (YYYY-MM-DD, today, yesterday)." default:"today"`

	meal models.Meal
}

func (c *MealAddCmd) Validate() error {
	date, err := utils.NormalizeDate(c.Date)
	if err != nil {
		return err
	}
	mt, ok := models.ParseMealType(c.Type)
	if !ok {
		return fmt.Errorf("unknown meal type %q (want Breakfast, Lunch or Dinner)", c.Type)
	}
	c.meal = models.Meal{Date: date, MealType: mt, Description: c.Description}
	return c.meal.Validate()
}

func (c *MealAddCmd) Run(ctx *cli.Context) error {
	id, err := tracker.AddMeal(ctx.Store, c.meal)
	if err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}
	ctx.Printf("Saved %s %d for %s\n", c.meal.MealType, id, c.meal.Date)
	return nil
}

type MealListCmd struct {
	Date string `short:"d" help:"Only meals on this date (YYYY-MM-DD)."`
}

func (c *MealListCmd) Run(ctx *cli.Context) error {
	meals, err := ctx.Store.ListMeals()
	if err != nil {
		return fmt.Errorf("failed to list meals: %w", err)
	}

	if c.Date != "" {
		filtered := meals[:0]
		for _, m := range meals {
			if m.Date == c.Date {
				filtered = append(filtered, m)
			}
		}
		meals = filtered
	}

	if len(meals) == 0 {
		ctx.Println("No meals found")
		return nil
	}
	ctx.Println(cli.RenderTable(cli.MealHeaders, cli.MealRows(meals)))
	return nil
}
