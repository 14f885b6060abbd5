package models

import "time"

// Food is a catalog item: a plain food, a barcode product, an AI-analyzed food,
// or a recipe-derived food. Entries reference it by ID and re-derive their
// nutrition from the live record on every read — nothing is snapshotted, so an
// explicit food update changes what subsequent reads report, never what was
// stored.
type Food struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Brand               string        `json:"brand,omitempty"`
	Barcode             string        `json:"barcode,omitempty"`
	NutritionPerServing NutritionInfo `json:"nutrition_per_serving"`
	ServingDescription  string        `json:"serving_description"`
	IsRecipe            bool          `json:"is_recipe"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// RecipeIngredient is one (food, quantity) pair in a recipe. Quantity is a
// serving multiplier against the ingredient food, same as on a FoodEntry.
type RecipeIngredient struct {
	FoodID   string  `json:"food_id"`
	Quantity float64 `json:"quantity"`
}

// Recipe aggregates ingredient nutrition and divides by Servings to produce a
// derived Food with IsRecipe set.
type Recipe struct {
	Name        string             `json:"name"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Servings    float64            `json:"servings"`
}
