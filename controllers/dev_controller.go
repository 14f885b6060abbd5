package controllers

import (
	"net/http"

	"logwell-backend/services"
	"logwell-backend/storage"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Store   storage.Store
	Foods   *services.FoodStore
	Logs    *services.LogStore
	Profile *services.ProfileStore
}

func NewDevController(store storage.Store, foods *services.FoodStore, logs *services.LogStore, profile *services.ProfileStore) *DevController {
	return &DevController{Store: store, Foods: foods, Logs: logs, Profile: profile}
}

// ResetData wipes every aggregate document and reloads the stores so their
// caches drop with it. Handy while testing a fresh onboarding flow; served
// under /dev for a reason.
func (d *DevController) ResetData(c *gin.Context) {
	ctx := c.Request.Context()
	keys := []string{storage.KeyFoods, storage.KeyDailyLogs, storage.KeyProfile}
	if err := d.Store.MultiRemove(ctx, keys); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset data"})
		return
	}
	if err := d.Foods.Reload(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload foods"})
		return
	}
	if err := d.Logs.Reload(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload logs"})
		return
	}
	if err := d.Profile.Reload(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "removed": keys})
}
