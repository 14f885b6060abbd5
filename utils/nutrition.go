package utils

import (
	"math"

	"logwell-backend/models"

	"github.com/sirupsen/logrus"
)

// Activity multipliers applied to BMR to estimate TDEE.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

// Macro presets as fractions of total calories (protein, carbs, fat).
var macroSplits = map[string][3]float64{
	models.MacroBalanced:    {0.30, 0.40, 0.30},
	models.MacroHighProtein: {0.40, 0.30, 0.30},
	models.MacroLowCarb:     {0.35, 0.20, 0.45},
	models.MacroBodyRecomp:  {0.40, 0.35, 0.25},
}

// AddNutrition returns the elementwise sum of a and b.
func AddNutrition(a, b models.NutritionInfo) models.NutritionInfo {
	return models.NutritionInfo{
		Calories: a.Calories + b.Calories,
		Protein:  a.Protein + b.Protein,
		Carbs:    a.Carbs + b.Carbs,
		Fat:      a.Fat + b.Fat,
		Fiber:    a.Fiber + b.Fiber,
		Sugar:    a.Sugar + b.Sugar,
		Sodium:   a.Sodium + b.Sodium,
	}
}

// ScaleNutrition returns n with every field multiplied by factor.
func ScaleNutrition(n models.NutritionInfo, factor float64) models.NutritionInfo {
	return models.NutritionInfo{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Sugar:    n.Sugar * factor,
		Sodium:   n.Sodium * factor,
	}
}

// CalculateEntryNutrition scales the referenced food's per-serving nutrition by
// the entry's quantity. It never fails: a missing food or a bad quantity yields
// an all-zero result and a diagnostic, so one corrupt entry cannot blank a
// whole day's aggregate.
func CalculateEntryNutrition(entry models.FoodEntry, food *models.Food) models.NutritionInfo {
	if food == nil {
		logrus.WithFields(logrus.Fields{
			"entry_id": entry.ID,
			"food_id":  entry.FoodID,
		}).Warn("entry references unknown food, counting as zero")
		return models.NutritionInfo{}
	}
	q := entry.Quantity
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		logrus.WithFields(logrus.Fields{
			"entry_id": entry.ID,
			"quantity": q,
		}).Warn("entry has invalid quantity, counting as zero")
		return models.NutritionInfo{}
	}
	return ScaleNutrition(food.NutritionPerServing, q)
}

// CalculateTotalNutrition folds CalculateEntryNutrition over entries, resolving
// each food through resolve. Entries whose food cannot be resolved contribute
// zero.
func CalculateTotalNutrition(entries []models.FoodEntry, resolve func(foodID string) *models.Food) models.NutritionInfo {
	var total models.NutritionInfo
	for _, e := range entries {
		total = AddNutrition(total, CalculateEntryNutrition(e, resolve(e.FoodID)))
	}
	return total
}

// CalculateProgress returns consumption as a percentage of goal, capped at 100.
// A non-positive goal or a non-finite input resolves to 0 rather than an error;
// progress display must survive partial onboarding data.
func CalculateProgress(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) || math.IsNaN(goal) || math.IsInf(goal, 0) {
		return 0
	}
	p := current / goal * 100
	if p > 100 {
		return 100
	}
	return p
}

// CalculateBMR estimates basal metabolic rate with the Mifflin-St Jeor
// equation. Height in centimeters, weight in kilograms.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales a BMR by the activity multiplier table. Unknown levels
// fall back to sedentary.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = activityMultipliers[models.ActivitySedentary]
	}
	return bmr * m
}

// SuggestMacroDistribution converts a calorie target into protein/carbs/fat
// grams using the preset's percentage split (protein and carbs at 4 kcal/g,
// fat at 9 kcal/g). Each macro is rounded independently; the small calorie
// drift that rounding introduces is accepted, not redistributed. An unknown
// preset gets the balanced split.
func SuggestMacroDistribution(calories float64, macroType string) (protein, carbs, fat float64) {
	split, ok := macroSplits[macroType]
	if !ok {
		split = macroSplits[models.MacroBalanced]
	}
	protein = math.Round(calories * split[0] / 4)
	carbs = math.Round(calories * split[1] / 4)
	fat = math.Round(calories * split[2] / 9)
	return protein, carbs, fat
}
