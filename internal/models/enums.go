package models

import "strings"

// ExerciseIntensity is how hard the day's exercise was
type ExerciseIntensity string

const (
	IntensityNone     ExerciseIntensity = "None"
	IntensityLow      ExerciseIntensity = "Low"
	IntensityModerate ExerciseIntensity = "Moderate"
	IntensityHigh     ExerciseIntensity = "High"
)

// WaterIntake is a coarse hydration level
type WaterIntake string

const (
	WaterLittle   WaterIntake = "Little"
	WaterModerate WaterIntake = "Moderate"
	WaterPlenty   WaterIntake = "Plenty"
)

// DrinkAmount is a coarse alcohol consumption level
type DrinkAmount string

const (
	DrinkNone     DrinkAmount = "None"
	DrinkLittle   DrinkAmount = "Little"
	DrinkModerate DrinkAmount = "Moderate"
	DrinkPlenty   DrinkAmount = "Plenty"
)

// MealType identifies which meal of the day an entry is
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// ExerciseIntensities returns the intensities in display order
func ExerciseIntensities() []ExerciseIntensity {
	return []ExerciseIntensity{IntensityNone, IntensityLow, IntensityModerate, IntensityHigh}
}

// WaterIntakes returns the water levels in display order
func WaterIntakes() []WaterIntake {
	return []WaterIntake{WaterLittle, WaterModerate, WaterPlenty}
}

// DrinkAmounts returns the alcohol levels in display order
func DrinkAmounts() []DrinkAmount {
	return []DrinkAmount{DrinkNone, DrinkLittle, DrinkModerate, DrinkPlenty}
}

// MealTypes returns the meal types in display order
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner}
}

func (e ExerciseIntensity) Valid() bool { return contains(ExerciseIntensities(), e) }
func (w WaterIntake) Valid() bool       { return contains(WaterIntakes(), w) }
func (d DrinkAmount) Valid() bool       { return contains(DrinkAmounts(), d) }
func (m MealType) Valid() bool          { return contains(MealTypes(), m) }

// ParseExerciseIntensity matches s case-insensitively against the known intensities.
func ParseExerciseIntensity(s string) (ExerciseIntensity, bool) {
	return parse(ExerciseIntensities(), s)
}

// ParseWaterIntake matches s case-insensitively against the known water levels.
func ParseWaterIntake(s string) (WaterIntake, bool) {
	return parse(WaterIntakes(), s)
}

// ParseDrinkAmount matches s case-insensitively against the known alcohol levels.
func ParseDrinkAmount(s string) (DrinkAmount, bool) {
	return parse(DrinkAmounts(), s)
}

// ParseMealType matches s case-insensitively against the known meal types.
func ParseMealType(s string) (MealType, bool) {
	return parse(MealTypes(), s)
}

func contains[T ~string](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func parse[T ~string](values []T, s string) (T, bool) {
	s = strings.TrimSpace(s)
	for _, candidate := range values {
		if strings.EqualFold(string(candidate), s) {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}
