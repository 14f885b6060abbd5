package controllers

import (
	"errors"
	"net/http"

	"logwell-backend/models"
	"logwell-backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods    *services.FoodStore
	Analyzer services.FoodAnalyzer
	Lookup   services.ProductLookup
	Hub      *services.RealtimeHub
}

func NewFoodController(foods *services.FoodStore, analyzer services.FoodAnalyzer, lookup services.ProductLookup, hub *services.RealtimeHub) *FoodController {
	return &FoodController{Foods: foods, Analyzer: analyzer, Lookup: lookup, Hub: hub}
}

type foodRequest struct {
	Name                string               `json:"name" binding:"required"`
	Brand               string               `json:"brand"`
	Barcode             string               `json:"barcode"`
	NutritionPerServing models.NutritionInfo `json:"nutrition_per_serving"`
	ServingDescription  string               `json:"serving_description"`
}

func (fc *FoodController) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, fc.Foods.ListFoods())
}

func (fc *FoodController) GetFood(c *gin.Context) {
	food, err := fc.Foods.GetFood(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validNutrition(req.NutritionPerServing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nutrition fields must be non-negative"})
		return
	}

	food, err := fc.Foods.SaveFood(c.Request.Context(), models.Food{
		Name:                req.Name,
		Brand:               req.Brand,
		Barcode:             req.Barcode,
		NutritionPerServing: req.NutritionPerServing,
		ServingDescription:  req.ServingDescription,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	fc.broadcastFoods()
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validNutrition(req.NutritionPerServing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nutrition fields must be non-negative"})
		return
	}

	food, err := fc.Foods.UpdateFood(c.Request.Context(), c.Param("id"), models.Food{
		Name:                req.Name,
		Brand:               req.Brand,
		Barcode:             req.Barcode,
		NutritionPerServing: req.NutritionPerServing,
		ServingDescription:  req.ServingDescription,
	})
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	fc.broadcastFoods()
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	if err := fc.Foods.DeleteFood(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	fc.broadcastFoods()
	c.Status(http.StatusNoContent)
}

// CreateRecipe saves a recipe-derived food: ingredient nutrition aggregated
// and divided by the serving count.
func (fc *FoodController) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Foods.CreateRecipeFood(c.Request.Context(), recipe)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fc.broadcastFoods()
	c.JSON(http.StatusCreated, food)
}

// AnalyzeFood runs the AI analysis port on a free-text description and returns
// the candidate food. Nothing is saved; the client accepts by POSTing it to
// /foods.
func (fc *FoodController) AnalyzeFood(c *gin.Context) {
	if fc.Analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "food analysis is not configured"})
		return
	}
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := fc.Analyzer.AnalyzeFood(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// LookupBarcode resolves a barcode to a candidate food.
func (fc *FoodController) LookupBarcode(c *gin.Context) {
	if fc.Lookup == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "barcode lookup is not configured"})
		return
	}

	food, err := fc.Lookup.LookupBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) broadcastFoods() {
	if fc.Hub != nil {
		fc.Hub.Broadcast(services.EventFoodsUpdated, nil)
	}
}

func validNutrition(n models.NutritionInfo) bool {
	return n.Calories >= 0 && n.Protein >= 0 && n.Carbs >= 0 && n.Fat >= 0 &&
		n.Fiber >= 0 && n.Sugar >= 0 && n.Sodium >= 0
}
