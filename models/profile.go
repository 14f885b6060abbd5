package models

import "time"

// Gender values accepted in the BMR formula.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity levels for the TDEE multiplier table.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly-active"
	ActivityModeratelyActive = "moderately-active"
	ActivityVeryActive       = "very-active"
	ActivityExtremelyActive  = "extremely-active"
)

// Fitness goal types driving the calorie-target policy.
const (
	GoalMaintenance       = "maintenance"
	GoalWeightLoss        = "weight-loss"
	GoalWeightGain        = "weight-gain"
	GoalBodyRecomposition = "body-recomposition"
)

// Macro distribution presets.
const (
	MacroBalanced    = "balanced"
	MacroHighProtein = "high-protein"
	MacroLowCarb     = "low-carb"
	MacroBodyRecomp  = "body-recomposition"
)

// Where a profile's goals came from.
const (
	GoalsSourceDefault    = "default"
	GoalsSourceCalculated = "calculated"
)

// UserProfile is the single profile for this installation. Biometrics are
// pointers: goal derivation needs to distinguish "not onboarded yet" from a
// literal zero. Goals are recomputed only on explicit create/update, never on
// read, and are always populated after creation — from the goal engine when
// all five biometrics are present, from the fixed defaults otherwise.
type UserProfile struct {
	Name           string         `json:"name,omitempty"`
	Age            *int           `json:"age,omitempty"`
	HeightCm       *float64       `json:"height_cm,omitempty"`
	WeightKg       *float64       `json:"weight_kg,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	ActivityLevel  string         `json:"activity_level,omitempty"`
	FitnessGoal    string         `json:"fitness_goal,omitempty"`
	WeightLossRate *float64       `json:"weight_loss_rate,omitempty"`
	MacroType      string         `json:"macro_type,omitempty"`
	Goals          NutritionGoals `json:"goals"`
	GoalsSource    string         `json:"goals_source"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// HasCompleteBiometrics reports whether every input the BMR/TDEE chain needs is
// present.
func (p *UserProfile) HasCompleteBiometrics() bool {
	return p.Age != nil && p.HeightCm != nil && p.WeightKg != nil &&
		p.Gender != "" && p.ActivityLevel != ""
}
