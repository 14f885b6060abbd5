package controllers

import (
	"errors"
	"net/http"
	"time"

	"logwell-backend/models"
	"logwell-backend/services"
	"logwell-backend/utils"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Logs    *services.LogStore
	Profile *services.ProfileStore
	Hub     *services.RealtimeHub
}

func NewLogController(logs *services.LogStore, profile *services.ProfileStore, hub *services.RealtimeHub) *LogController {
	return &LogController{Logs: logs, Profile: profile, Hub: hub}
}

// GetCurrentDay returns the selected day's log with read-time derivations:
// chronological entries, hour buckets, and progress against the profile goals.
func (lc *LogController) GetCurrentDay(c *gin.Context) {
	day := lc.Logs.CurrentDayLog()

	var goals models.NutritionGoals
	if profile, ok := lc.Profile.UserProfile(); ok {
		goals = profile.Goals
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     day.Date,
		"log":      day,
		"entries":  lc.Logs.EntriesChronological(),
		"by_hour":  lc.Logs.EntriesByHour(),
		"progress": buildProgress(day.TotalNutrition, goals),
	})
}

// SelectDate moves the cursor to an arbitrary date.
func (lc *LogController) SelectDate(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lc.Logs.SetSelectedDate(c.Request.Context(), req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": lc.Logs.SelectedDate()})
}

func (lc *LogController) PreviousDay(c *gin.Context) {
	date, err := lc.Logs.GoToPreviousDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date})
}

func (lc *LogController) NextDay(c *gin.Context) {
	date, err := lc.Logs.GoToNextDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date})
}

// History returns every stored day, for charts and streak views.
func (lc *LogController) History(c *gin.Context) {
	c.JSON(http.StatusOK, lc.Logs.AllLogs())
}

func (lc *LogController) AddEntry(c *gin.Context) {
	var req struct {
		FoodID   string     `json:"food_id" binding:"required"`
		Quantity float64    `json:"quantity" binding:"required,gt=0"`
		MealType string     `json:"meal_type" binding:"required"`
		Notes    string     `json:"notes"`
		LoggedAt *time.Time `json:"logged_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.FoodEntry{
		FoodID:   req.FoodID,
		Quantity: req.Quantity,
		MealType: req.MealType,
		Notes:    req.Notes,
	}
	if req.LoggedAt != nil {
		entry.LoggedAt = *req.LoggedAt
	}

	created, err := lc.Logs.AddEntry(c.Request.Context(), entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lc.broadcastDay()
	c.JSON(http.StatusCreated, created)
}

func (lc *LogController) UpdateEntry(c *gin.Context) {
	var patch models.FoodEntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := lc.Logs.UpdateEntry(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lc.broadcastDay()
	c.JSON(http.StatusOK, updated)
}

func (lc *LogController) DeleteEntry(c *gin.Context) {
	err := lc.Logs.DeleteEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lc.broadcastDay()
	c.Status(http.StatusNoContent)
}

func (lc *LogController) SetDayNotes(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lc.Logs.SetDayNotes(c.Request.Context(), req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lc.broadcastDay()
	c.Status(http.StatusNoContent)
}

func (lc *LogController) broadcastDay() {
	if lc.Hub == nil {
		return
	}
	day := lc.Logs.CurrentDayLog()
	lc.Hub.Broadcast(services.EventLogUpdated, gin.H{"date": day.Date, "total": day.TotalNutrition})
}

func buildProgress(total models.NutritionInfo, goals models.NutritionGoals) map[string]interface{} {
	row := func(consumed, goal float64) map[string]float64 {
		return map[string]float64{
			"consumed": consumed,
			"goal":     goal,
			"percent":  utils.CalculateProgress(consumed, goal),
		}
	}
	return map[string]interface{}{
		"calories": row(total.Calories, goals.Calories),
		"protein":  row(total.Protein, goals.Protein),
		"carbs":    row(total.Carbs, goals.Carbs),
		"fat":      row(total.Fat, goals.Fat),
		"fiber":    row(total.Fiber, goals.Fiber),
	}
}
