package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"logwell-backend/models"
	"logwell-backend/storage"
	"logwell-backend/utils"

	"github.com/google/uuid"
)

var ErrFoodNotFound = errors.New("food not found")

// FoodStore owns the food catalog. The catalog is one JSON array document in
// the persistence port; every mutation rewrites the whole document and only
// commits in memory once the write succeeded.
type FoodStore struct {
	mu    sync.RWMutex
	store storage.Store
	foods []models.Food
}

func NewFoodStore(ctx context.Context, store storage.Store) (*FoodStore, error) {
	s := &FoodStore{store: store}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FoodStore) load(ctx context.Context) error {
	raw, found, err := s.store.Get(ctx, storage.KeyFoods)
	if err != nil {
		return fmt.Errorf("load foods: %w", err)
	}
	if !found {
		s.foods = []models.Food{}
		return nil
	}
	var foods []models.Food
	if err := json.Unmarshal([]byte(raw), &foods); err != nil {
		return fmt.Errorf("decode foods document: %w", err)
	}
	s.foods = foods
	return nil
}

// Reload re-reads the foods document, dropping whatever was cached. Used
// after the documents are wiped out from under the store.
func (s *FoodStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *FoodStore) persist(ctx context.Context, foods []models.Food) error {
	raw, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyFoods, string(raw))
}

// ListFoods returns a copy of the catalog.
func (s *FoodStore) ListFoods() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Food, len(s.foods))
	copy(out, s.foods)
	return out
}

func (s *FoodStore) GetFood(id string) (models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.foods {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Food{}, ErrFoodNotFound
}

// resolve is the lookup the nutrition math folds over. Nil for unknown ids —
// the math treats that as a zero-contribution entry.
func (s *FoodStore) resolve(id string) *models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.foods {
		if s.foods[i].ID == id {
			f := s.foods[i]
			return &f
		}
	}
	return nil
}

// SaveFood adds a food to the catalog, assigning an id and timestamps.
func (s *FoodStore) SaveFood(ctx context.Context, food models.Food) (models.Food, error) {
	if food.ID == "" {
		food.ID = uuid.NewString()
	}
	now := time.Now()
	food.CreatedAt = now
	food.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.Food{}, s.foods...), food)
	if err := s.persist(ctx, next); err != nil {
		return models.Food{}, err
	}
	s.foods = next
	return food, nil
}

// UpdateFood replaces the mutable fields of an existing food. Entries keep
// referencing it by id; their nutrition is re-derived from the live record on
// read, so already-persisted day totals are untouched until their log next
// recomputes.
func (s *FoodStore) UpdateFood(ctx context.Context, id string, food models.Food) (models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Food, len(s.foods))
	copy(next, s.foods)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		food.ID = id
		food.CreatedAt = next[i].CreatedAt
		food.UpdatedAt = time.Now()
		next[i] = food
		if err := s.persist(ctx, next); err != nil {
			return models.Food{}, err
		}
		s.foods = next
		return food, nil
	}
	return models.Food{}, ErrFoodNotFound
}

// DeleteFood removes a food from the catalog. Entries referencing it are left
// alone; they count as zero from then on.
func (s *FoodStore) DeleteFood(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Food, 0, len(s.foods))
	found := false
	for _, f := range s.foods {
		if f.ID == id {
			found = true
			continue
		}
		next = append(next, f)
	}
	if !found {
		return ErrFoodNotFound
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.foods = next
	return nil
}

// CreateRecipeFood aggregates a recipe's ingredient nutrition, divides by its
// servings, and saves the result as a derived food.
func (s *FoodStore) CreateRecipeFood(ctx context.Context, recipe models.Recipe) (models.Food, error) {
	if recipe.Servings <= 0 {
		return models.Food{}, fmt.Errorf("recipe needs a positive serving count")
	}
	if len(recipe.Ingredients) == 0 {
		return models.Food{}, fmt.Errorf("recipe needs at least one ingredient")
	}

	var total models.NutritionInfo
	for _, ing := range recipe.Ingredients {
		f := s.resolve(ing.FoodID)
		if f == nil {
			return models.Food{}, fmt.Errorf("recipe ingredient %s: %w", ing.FoodID, ErrFoodNotFound)
		}
		if ing.Quantity <= 0 {
			return models.Food{}, fmt.Errorf("recipe ingredient %s needs a positive quantity", ing.FoodID)
		}
		total = utils.AddNutrition(total, utils.ScaleNutrition(f.NutritionPerServing, ing.Quantity))
	}

	food := models.Food{
		Name:                recipe.Name,
		NutritionPerServing: utils.ScaleNutrition(total, 1/recipe.Servings),
		ServingDescription:  fmt.Sprintf("1 of %g servings", recipe.Servings),
		IsRecipe:            true,
	}
	return s.SaveFood(ctx, food)
}
