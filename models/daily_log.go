package models

// DateFormat is the calendar-day key format for DailyLog ("2006-01-02").
const DateFormat = "2006-01-02"

// DailyLog owns all entries for one calendar date. TotalNutrition is a cache
// that must always equal the elementwise sum of the entries' computed nutrition;
// it is recomputed synchronously after every mutation, never lazily.
//
// A log is created on the first entry for its date and never removed after
// that: deleting the last entry leaves it present with an empty entry slice,
// zeroed totals, and its day-level Notes intact.
type DailyLog struct {
	Date           string        `json:"date"`
	Entries        []FoodEntry   `json:"entries"`
	TotalNutrition NutritionInfo `json:"total_nutrition"`
	Notes          string        `json:"notes,omitempty"`
}
