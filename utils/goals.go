package utils

import (
	"math"

	"logwell-backend/models"
)

// Goal-policy constants. The calorie floors and the 10% recomposition deficit
// are product decisions, not derived values.
const (
	weightLossFloorKcal = 1200
	recompFloorKcal     = 1400
	recompDeficit       = 0.10
	kcalPerPoundPerWeek = 500
	weightGainSurplus   = 500
	fiberTargetGrams    = 25
)

// DefaultGoals is used whenever biometrics are too incomplete to derive goals.
var DefaultGoals = models.NutritionGoals{
	Calories: 2000,
	Protein:  150,
	Carbs:    250,
	Fat:      67,
	Fiber:    fiberTargetGrams,
}

// CalculateGoalsFromTDEE derives a full goal set from a TDEE figure and a
// fitness-goal type. weightLossRate is in lb/week and only consulted for
// weight loss; nil means 1. The hard calorie floors are never bypassed, and
// body recomposition forces its own macro preset no matter what the caller
// asked for.
func CalculateGoalsFromTDEE(tdee float64, macroType, goalType string, weightLossRate *float64) models.NutritionGoals {
	target := tdee
	switch goalType {
	case models.GoalWeightLoss:
		rate := 1.0
		if weightLossRate != nil {
			rate = *weightLossRate
		}
		target = tdee - kcalPerPoundPerWeek*rate
		if target < weightLossFloorKcal {
			target = weightLossFloorKcal
		}
	case models.GoalWeightGain:
		target = tdee + weightGainSurplus
	case models.GoalBodyRecomposition:
		target = tdee - math.Round(tdee*recompDeficit)
		if target < recompFloorKcal {
			target = recompFloorKcal
		}
		macroType = models.MacroBodyRecomp
	}

	protein, carbs, fat := SuggestMacroDistribution(target, macroType)
	return models.NutritionGoals{
		Calories: target,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiberTargetGrams,
	}
}

// GoalsForProfile derives goals from a profile's biometrics, falling back to
// DefaultGoals when any of age, height, weight, gender, or activity level is
// missing. The returned source is "calculated" only on the derived path.
func GoalsForProfile(p *models.UserProfile) (models.NutritionGoals, string) {
	if !p.HasCompleteBiometrics() {
		return DefaultGoals, models.GoalsSourceDefault
	}
	bmr := CalculateBMR(*p.WeightKg, *p.HeightCm, *p.Age, p.Gender)
	tdee := CalculateTDEE(bmr, p.ActivityLevel)
	goals := CalculateGoalsFromTDEE(tdee, p.MacroType, p.FitnessGoal, p.WeightLossRate)
	return goals, models.GoalsSourceCalculated
}
