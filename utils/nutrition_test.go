package utils

import (
	"math"
	"testing"

	"logwell-backend/models"

	"github.com/stretchr/testify/assert"
)

func sampleFood() *models.Food {
	return &models.Food{
		ID:   "f1",
		Name: "Oats",
		NutritionPerServing: models.NutritionInfo{
			Calories: 150,
			Protein:  5,
			Carbs:    27,
			Fat:      3,
			Fiber:    4,
			Sugar:    1,
			Sodium:   2,
		},
	}
}

func TestCalculateEntryNutrition_LinearScaling(t *testing.T) {
	food := sampleFood()
	entry := models.FoodEntry{ID: "e1", FoodID: "f1", Quantity: 2.5}

	got := CalculateEntryNutrition(entry, food)

	assert.Equal(t, 150*2.5, got.Calories)
	assert.Equal(t, 5*2.5, got.Protein)
	assert.Equal(t, 27*2.5, got.Carbs)
	assert.Equal(t, 3*2.5, got.Fat)
	assert.Equal(t, 4*2.5, got.Fiber)
	assert.Equal(t, 1*2.5, got.Sugar)
	assert.Equal(t, 2*2.5, got.Sodium)
}

func TestCalculateEntryNutrition_MissingFood(t *testing.T) {
	entry := models.FoodEntry{ID: "e1", FoodID: "gone", Quantity: 1}
	assert.Equal(t, models.NutritionInfo{}, CalculateEntryNutrition(entry, nil))
}

func TestCalculateEntryNutrition_InvalidQuantity(t *testing.T) {
	food := sampleFood()
	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		entry := models.FoodEntry{ID: "e1", FoodID: "f1", Quantity: q}
		assert.Equal(t, models.NutritionInfo{}, CalculateEntryNutrition(entry, food),
			"quantity %v should yield zero nutrition", q)
	}
}

func TestCalculateTotalNutrition(t *testing.T) {
	food := sampleFood()
	resolve := func(id string) *models.Food {
		if id == "f1" {
			return food
		}
		return nil
	}

	t.Run("empty is all-zero", func(t *testing.T) {
		assert.Equal(t, models.NutritionInfo{}, CalculateTotalNutrition(nil, resolve))
	})

	t.Run("equals fold of entry nutrition", func(t *testing.T) {
		entries := []models.FoodEntry{
			{ID: "a", FoodID: "f1", Quantity: 1},
			{ID: "b", FoodID: "f1", Quantity: 2},
		}
		total := CalculateTotalNutrition(entries, resolve)
		want := AddNutrition(
			CalculateEntryNutrition(entries[0], food),
			CalculateEntryNutrition(entries[1], food),
		)
		assert.Equal(t, want, total)
	})

	t.Run("unresolvable entry contributes zero", func(t *testing.T) {
		entries := []models.FoodEntry{
			{ID: "a", FoodID: "f1", Quantity: 1},
			{ID: "b", FoodID: "missing", Quantity: 3},
		}
		total := CalculateTotalNutrition(entries, resolve)
		assert.Equal(t, 150.0, total.Calories)
	})
}

func TestCalculateProgress(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		goal    float64
		want    float64
	}{
		{"halfway", 1000, 2000, 50},
		{"exactly at goal", 2000, 2000, 100},
		{"over goal caps at 100", 3000, 2000, 100},
		{"zero goal", 500, 0, 0},
		{"negative goal", 500, -100, 0},
		{"NaN current", math.NaN(), 2000, 0},
		{"infinite current", math.Inf(1), 2000, 0},
		{"zero current", 0, 2000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateProgress(tc.current, tc.goal))
		})
	}
}

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor reference values
	assert.Equal(t, 1648.75, CalculateBMR(70, 175, 30, models.GenderMale))
	assert.Equal(t, 1482.75, CalculateBMR(70, 175, 30, models.GenderFemale))
}

func TestCalculateTDEE(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{models.ActivitySedentary, 1200},
		{models.ActivityLightlyActive, 1375},
		{models.ActivityModeratelyActive, 1550},
		{models.ActivityVeryActive, 1725},
		{models.ActivityExtremelyActive, 1900},
		{"couch-potato", 1200}, // unknown falls back to sedentary
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateTDEE(1000, tc.level))
		})
	}
}

func TestSuggestMacroDistribution(t *testing.T) {
	t.Run("balanced at 2000 kcal", func(t *testing.T) {
		protein, carbs, fat := SuggestMacroDistribution(2000, models.MacroBalanced)
		assert.Equal(t, 150.0, protein) // 30% / 4
		assert.Equal(t, 200.0, carbs)   // 40% / 4
		assert.Equal(t, 67.0, fat)      // 30% / 9, rounded up from 66.67
	})

	t.Run("each macro rounds independently", func(t *testing.T) {
		protein, carbs, fat := SuggestMacroDistribution(2005, models.MacroHighProtein)
		assert.Equal(t, math.Round(2005*0.40/4), protein)
		assert.Equal(t, math.Round(2005*0.30/4), carbs)
		assert.Equal(t, math.Round(2005*0.30/9), fat)
	})

	t.Run("unknown preset uses balanced", func(t *testing.T) {
		p1, c1, f1 := SuggestMacroDistribution(1800, "keto-ish")
		p2, c2, f2 := SuggestMacroDistribution(1800, models.MacroBalanced)
		assert.Equal(t, p2, p1)
		assert.Equal(t, c2, c1)
		assert.Equal(t, f2, f1)
	})
}
