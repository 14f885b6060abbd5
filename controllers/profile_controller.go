package controllers

import (
	"errors"
	"net/http"

	"logwell-backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profile *services.ProfileStore
	Hub     *services.RealtimeHub
}

func NewProfileController(profile *services.ProfileStore, hub *services.RealtimeHub) *ProfileController {
	return &ProfileController{Profile: profile, Hub: hub}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, ok := pc.Profile.UserProfile()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not created yet"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) CreateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profile.CreateUserProfile(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pc.Hub != nil {
		pc.Hub.Broadcast(services.EventProfileUpdated, profile)
	}
	c.JSON(http.StatusCreated, profile)
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profile.UpdateUserProfile(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pc.Hub != nil {
		pc.Hub.Broadcast(services.EventProfileUpdated, profile)
	}
	c.JSON(http.StatusOK, profile)
}
