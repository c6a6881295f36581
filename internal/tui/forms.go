package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/utils"
)

// Form models hold the raw field text; huh writes into them through pointers.

type LogFormModel struct {
	Date         string
	SleepQuality string
	SleepHours   string
	Exercise     string
	Intensity    models.ExerciseIntensity
	Water        models.WaterIntake
	Alcohol      models.DrinkAmount
	Drink        string
	Weight       string
	BodyScore    string
}

type MealFormModel struct {
	Date        string
	Type        models.MealType
	Description string
}

type MeasurementFormModel struct {
	Date     string
	Time     string
	Glucose  string
	UricAcid string
}

type FilterFormModel struct {
	From        string
	To          string
	MealTypes   []models.MealType
	Intensities []models.ExerciseIntensity
}

// newDailyLog is the blank entry shown by the add form.
func newDailyLog() models.DailyLog {
	return models.DailyLog{
		Date:              utils.Today(),
		ExerciseIntensity: models.IntensityNone,
		WaterIntake:       models.WaterLittle,
		AlcoholAmount:     models.DrinkNone,
	}
}

func NewLogFormModel(l models.DailyLog) *LogFormModel {
	return &LogFormModel{
		Date:         l.Date,
		SleepQuality: strconv.Itoa(l.SleepQuality),
		SleepHours:   l.SleepHours,
		Exercise:     l.ExerciseType,
		Intensity:    l.ExerciseIntensity,
		Water:        l.WaterIntake,
		Alcohol:      l.AlcoholAmount,
		Drink:        l.AlcoholType,
		Weight:       formatFloat(l.WeightKg),
		BodyScore:    formatFloat(l.BodyScore),
	}
}

// DailyLog converts the form into a validated daily log with no id.
func (f *LogFormModel) DailyLog() (models.DailyLog, error) {
	date, err := utils.NormalizeDate(f.Date)
	if err != nil {
		return models.DailyLog{}, apperrors.Invalid("date", "%v", err)
	}
	quality, err := strconv.Atoi(strings.TrimSpace(f.SleepQuality))
	if err != nil {
		return models.DailyLog{}, apperrors.Invalid("sleep_quality", "must be a whole number")
	}
	weight, err := parseFloat("weight_kg", f.Weight)
	if err != nil {
		return models.DailyLog{}, err
	}
	body, err := parseFloat("body_score", f.BodyScore)
	if err != nil {
		return models.DailyLog{}, err
	}

	l := models.DailyLog{
		Date:              date,
		SleepQuality:      quality,
		SleepHours:        strings.TrimSpace(f.SleepHours),
		ExerciseType:      strings.TrimSpace(f.Exercise),
		ExerciseIntensity: f.Intensity,
		WaterIntake:       f.Water,
		AlcoholAmount:     f.Alcohol,
		AlcoholType:       strings.TrimSpace(f.Drink),
		WeightKg:          weight,
		BodyScore:         body,
	}
	return l, l.Validate()
}

func NewMealFormModel() *MealFormModel {
	return &MealFormModel{Date: utils.Today(), Type: models.MealBreakfast}
}

func (f *MealFormModel) Meal() (models.Meal, error) {
	date, err := utils.NormalizeDate(f.Date)
	if err != nil {
		return models.Meal{}, apperrors.Invalid("date", "%v", err)
	}
	m := models.Meal{Date: date, MealType: f.Type, Description: strings.TrimSpace(f.Description)}
	return m, m.Validate()
}

func NewMeasurementFormModel() *MeasurementFormModel {
	return &MeasurementFormModel{Date: utils.Today(), Time: utils.NowTime()[:5], Glucose: "0", UricAcid: "0"}
}

func (f *MeasurementFormModel) Measurement() (models.Measurement, error) {
	date, err := utils.NormalizeDate(f.Date)
	if err != nil {
		return models.Measurement{}, apperrors.Invalid("date", "%v", err)
	}
	tod, err := utils.NormalizeTime(f.Time)
	if err != nil {
		return models.Measurement{}, apperrors.Invalid("time", "%v", err)
	}
	glucose, err := parseFloat("glucose", f.Glucose)
	if err != nil {
		return models.Measurement{}, err
	}
	uric, err := parseFloat("uric_acid", f.UricAcid)
	if err != nil {
		return models.Measurement{}, err
	}
	m := models.Measurement{Date: date, Time: tod, Glucose: glucose, UricAcid: uric}
	return m, m.Validate()
}

func NewFilterFormModel(spec filter.Spec) *FilterFormModel {
	f := &FilterFormModel{
		MealTypes:   append([]models.MealType(nil), spec.MealTypes...),
		Intensities: append([]models.ExerciseIntensity(nil), spec.Intensities...),
	}
	if spec.DateRange != nil {
		f.From = spec.DateRange.Start
		f.To = spec.DateRange.End
	}
	return f
}

// Spec converts the form into a filter spec. Both dates empty means no range.
func (f *FilterFormModel) Spec() (filter.Spec, error) {
	spec := filter.Spec{MealTypes: f.MealTypes, Intensities: f.Intensities}

	from, to := strings.TrimSpace(f.From), strings.TrimSpace(f.To)
	if (from == "") != (to == "") {
		return spec, apperrors.Invalid("date_range", "start and end must be given together")
	}
	if from != "" {
		spec.DateRange = &filter.DateRange{Start: from, End: to}
	}
	return spec, spec.Validate()
}

func parseFloat(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.Invalid(field, "must be a number (got %q)", s)
	}
	return v, models.ValidateNonNegative(field, v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateDate(s string) error {
	_, err := utils.NormalizeDate(s)
	return err
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return models.ValidateDate("date", strings.TrimSpace(s))
}

func validateTime(s string) error {
	_, err := utils.NormalizeTime(s)
	return err
}

func validateSleepQuality(s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if i < constants.MinSleepQuality || i > constants.MaxSleepQuality {
		return fmt.Errorf("sleep quality must be %d-%d", constants.MinSleepQuality, constants.MaxSleepQuality)
	}
	return nil
}

func validateReading(field string) func(string) error {
	return func(s string) error {
		_, err := parseFloat(field, s)
		return err
	}
}

func intensityOptions() []huh.Option[models.ExerciseIntensity] {
	var opts []huh.Option[models.ExerciseIntensity]
	for _, v := range models.ExerciseIntensities() {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

func mealTypeOptions() []huh.Option[models.MealType] {
	var opts []huh.Option[models.MealType]
	for _, v := range models.MealTypes() {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

func NewLogForm(fm *LogFormModel, title string) *huh.Form {
	var water []huh.Option[models.WaterIntake]
	for _, v := range models.WaterIntakes() {
		water = append(water, huh.NewOption(string(v), v))
	}
	var alcohol []huh.Option[models.DrinkAmount]
	for _, v := range models.DrinkAmounts() {
		alcohol = append(alcohol, huh.NewOption(string(v), v))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, today or yesterday").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Sleep quality (0-100)").
				Value(&fm.SleepQuality).
				Validate(validateSleepQuality),
			huh.NewInput().
				Title("Sleep hours").
				Value(&fm.SleepHours),
			huh.NewInput().
				Title("Exercise").
				Value(&fm.Exercise),
			huh.NewSelect[models.ExerciseIntensity]().
				Title("Exercise intensity").
				Options(intensityOptions()...).
				Value(&fm.Intensity),
		),
		huh.NewGroup(
			huh.NewSelect[models.WaterIntake]().
				Title("Water intake").
				Options(water...).
				Value(&fm.Water),
			huh.NewSelect[models.DrinkAmount]().
				Title("Alcohol").
				Options(alcohol...).
				Value(&fm.Alcohol),
			huh.NewInput().
				Title("Drink").
				Value(&fm.Drink),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&fm.Weight).
				Validate(validateReading("weight_kg")),
			huh.NewInput().
				Title("Body score").
				Value(&fm.BodyScore).
				Validate(validateReading("body_score")),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewMealForm(fm *MealFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Add meal"),
			huh.NewInput().
				Title("Date").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewSelect[models.MealType]().
				Title("Meal").
				Options(mealTypeOptions()...).
				Value(&fm.Type),
			huh.NewText().
				Title("Description").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewMeasurementForm(fm *MeasurementFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Add measurement"),
			huh.NewInput().
				Title("Date").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Time").
				Description("HH:MM or HH:MM:SS").
				Value(&fm.Time).
				Validate(validateTime),
			huh.NewInput().
				Title("Glucose").
				Value(&fm.Glucose).
				Validate(validateReading("glucose")),
			huh.NewInput().
				Title("Uric acid").
				Value(&fm.UricAcid).
				Validate(validateReading("uric_acid")),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewFilterForm(fm *FilterFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Filter").Description("Leave both dates empty for no date range"),
			huh.NewInput().
				Title("From").
				Value(&fm.From).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("To").
				Value(&fm.To).
				Validate(validateOptionalDate),
			huh.NewMultiSelect[models.MealType]().
				Title("Meal types").
				Options(mealTypeOptions()...).
				Value(&fm.MealTypes),
			huh.NewMultiSelect[models.ExerciseIntensity]().
				Title("Exercise intensities").
				Options(intensityOptions()...).
				Value(&fm.Intensities),
		),
	).WithTheme(huh.ThemeDracula())
}
