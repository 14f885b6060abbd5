package models

import "time"

// Meal types for a FoodEntry.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// FoodEntry is one logged portion. Quantity is a serving multiplier against the
// referenced food's per-serving nutrition, not grams. An entry is owned by
// exactly one DailyLog.
type FoodEntry struct {
	ID       string    `json:"id"`
	FoodID   string    `json:"food_id"`
	Quantity float64   `json:"quantity"`
	MealType string    `json:"meal_type"`
	Notes    string    `json:"notes,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// FoodEntryPatch carries the fields an entry owner may change after logging.
// Nil means "leave as is".
type FoodEntryPatch struct {
	Quantity *float64 `json:"quantity,omitempty"`
	MealType *string  `json:"meal_type,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// ValidMealType reports whether s is one of the four meal buckets.
func ValidMealType(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
