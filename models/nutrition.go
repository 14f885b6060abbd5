package models

// NutritionInfo holds the nutrient totals for one serving, one entry, or one day.
// Every field is always present and zero-defaulted; fiber/sugar/sodium are not
// optional so aggregation never has to distinguish "missing" from "zero".
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// NutritionGoals is the user's daily nutrient-intake targets.
type NutritionGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
