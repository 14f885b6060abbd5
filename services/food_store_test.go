package services

import (
	"context"
	"testing"

	"logwell-backend/models"
	"logwell-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoodStore(t *testing.T) (*FoodStore, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	fs, err := NewFoodStore(context.Background(), mem)
	require.NoError(t, err)
	return fs, mem
}

func TestSaveFood_AssignsIDAndPersists(t *testing.T) {
	fs, mem := newFoodStore(t)
	ctx := context.Background()

	food, err := fs.SaveFood(ctx, models.Food{
		Name:                "Banana",
		NutritionPerServing: models.NutritionInfo{Calories: 105, Carbs: 27},
		ServingDescription:  "1 medium",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, food.ID)
	assert.False(t, food.CreatedAt.IsZero())

	fs2, err := NewFoodStore(ctx, mem)
	require.NoError(t, err)
	got, err := fs2.GetFood(food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Banana", got.Name)
	assert.Equal(t, 105.0, got.NutritionPerServing.Calories)
}

func TestGetFood_NotFound(t *testing.T) {
	fs, _ := newFoodStore(t)
	_, err := fs.GetFood("nope")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestUpdateFood_KeepsIdentity(t *testing.T) {
	fs, _ := newFoodStore(t)
	ctx := context.Background()

	food, err := fs.SaveFood(ctx, models.Food{Name: "Yogurt", NutritionPerServing: models.NutritionInfo{Calories: 100}})
	require.NoError(t, err)

	updated, err := fs.UpdateFood(ctx, food.ID, models.Food{
		Name:                "Greek Yogurt",
		NutritionPerServing: models.NutritionInfo{Calories: 130, Protein: 12},
	})
	require.NoError(t, err)
	assert.Equal(t, food.ID, updated.ID)
	assert.Equal(t, food.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Greek Yogurt", updated.Name)

	_, err = fs.UpdateFood(ctx, "nope", models.Food{Name: "x"})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDeleteFood(t *testing.T) {
	fs, _ := newFoodStore(t)
	ctx := context.Background()

	food, err := fs.SaveFood(ctx, models.Food{Name: "Toast"})
	require.NoError(t, err)

	require.NoError(t, fs.DeleteFood(ctx, food.ID))
	_, err = fs.GetFood(food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)
	assert.ErrorIs(t, fs.DeleteFood(ctx, food.ID), ErrFoodNotFound)
}

func TestCreateRecipeFood_DividesByServings(t *testing.T) {
	fs, _ := newFoodStore(t)
	ctx := context.Background()

	oats, err := fs.SaveFood(ctx, models.Food{
		Name:                "Oats",
		NutritionPerServing: models.NutritionInfo{Calories: 150, Protein: 5, Carbs: 27, Fat: 3},
	})
	require.NoError(t, err)
	milk, err := fs.SaveFood(ctx, models.Food{
		Name:                "Milk",
		NutritionPerServing: models.NutritionInfo{Calories: 120, Protein: 8, Carbs: 12, Fat: 5},
	})
	require.NoError(t, err)

	recipe, err := fs.CreateRecipeFood(ctx, models.Recipe{
		Name:     "Overnight Oats",
		Servings: 2,
		Ingredients: []models.RecipeIngredient{
			{FoodID: oats.ID, Quantity: 2},
			{FoodID: milk.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, recipe.IsRecipe)
	// (2*150 + 120) / 2 servings
	assert.Equal(t, 210.0, recipe.NutritionPerServing.Calories)
	// (2*5 + 8) / 2
	assert.Equal(t, 9.0, recipe.NutritionPerServing.Protein)
}

func TestCreateRecipeFood_Validation(t *testing.T) {
	fs, _ := newFoodStore(t)
	ctx := context.Background()

	oats, err := fs.SaveFood(ctx, models.Food{Name: "Oats"})
	require.NoError(t, err)

	_, err = fs.CreateRecipeFood(ctx, models.Recipe{Name: "x", Servings: 0,
		Ingredients: []models.RecipeIngredient{{FoodID: oats.ID, Quantity: 1}}})
	assert.Error(t, err)

	_, err = fs.CreateRecipeFood(ctx, models.Recipe{Name: "x", Servings: 2})
	assert.Error(t, err)

	_, err = fs.CreateRecipeFood(ctx, models.Recipe{Name: "x", Servings: 2,
		Ingredients: []models.RecipeIngredient{{FoodID: "ghost", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
