package routes

import (
	"logwell-backend/config"
	"logwell-backend/controllers"
	"logwell-backend/middlewares"
	"logwell-backend/services"
	"logwell-backend/storage"

	"github.com/gin-gonic/gin"
)

// Deps is everything the router needs, built once by the composition root.
type Deps struct {
	Cfg      *config.Config
	Store    storage.Store
	Logs     *services.LogStore
	Profile  *services.ProfileStore
	Foods    *services.FoodStore
	Analyzer services.FoodAnalyzer
	Lookup   services.ProductLookup
	Hub      *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(d.Cfg)
	logCtl := controllers.NewLogController(d.Logs, d.Profile, d.Hub)
	profileCtl := controllers.NewProfileController(d.Profile, d.Hub)
	foodCtl := controllers.NewFoodController(d.Foods, d.Analyzer, d.Lookup, d.Hub)
	rtCtl := controllers.NewRealtimeController(d.Hub)
	devCtl := controllers.NewDevController(d.Store, d.Foods, d.Logs, d.Profile)

	r.POST("/api/auth/login", authCtl.Login)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		api.GET("/profile", profileCtl.GetProfile)
		api.POST("/profile", profileCtl.CreateProfile)
		api.PUT("/profile", profileCtl.UpdateProfile)

		api.GET("/logs/current", logCtl.GetCurrentDay)
		api.POST("/logs/select", logCtl.SelectDate)
		api.POST("/logs/previous", logCtl.PreviousDay)
		api.POST("/logs/next", logCtl.NextDay)
		api.GET("/logs/history", logCtl.History)
		api.PUT("/logs/notes", logCtl.SetDayNotes)
		api.POST("/logs/entries", logCtl.AddEntry)
		api.PUT("/logs/entries/:id", logCtl.UpdateEntry)
		api.DELETE("/logs/entries/:id", logCtl.DeleteEntry)

		api.GET("/foods", foodCtl.ListFoods)
		api.POST("/foods", foodCtl.CreateFood)
		api.GET("/foods/:id", foodCtl.GetFood)
		api.PUT("/foods/:id", foodCtl.UpdateFood)
		api.DELETE("/foods/:id", foodCtl.DeleteFood)
		api.POST("/recipes", foodCtl.CreateRecipe)
		api.POST("/analysis", foodCtl.AnalyzeFood)
		api.GET("/barcode/:code", foodCtl.LookupBarcode)

		api.GET("/ws", rtCtl.EventsWS)

		api.POST("/dev/reset", devCtl.ResetData)
	}

	return r
}
