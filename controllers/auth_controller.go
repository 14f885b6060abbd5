package controllers

import (
	"net/http"

	"logwell-backend/config"
	"logwell-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Cfg: cfg}
}

// Login exchanges the app password for a bearer token. Single-user install:
// there is one password, hashed in the environment.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.CheckPasswordHash(req.Password, ac.Cfg.AppPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := utils.GenerateJWT(ac.Cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
