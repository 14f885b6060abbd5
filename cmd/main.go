package main

import (
	"context"
	"flag"
	"fmt"

	"logwell-backend/config"
	"logwell-backend/routes"
	"logwell-backend/services"
	"logwell-backend/storage"
	"logwell-backend/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash for the given password (use it as APP_PASSWORD_HASH) and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := utils.HashPassword(*hashPassword)
		if err != nil {
			logrus.Fatalf("hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	config.InitLogger()

	store, err := newStorage(cfg)
	if err != nil {
		logrus.Fatalf("storage (%s): %v", cfg.StorageBackend, err)
	}

	ctx := context.Background()
	foods, err := services.NewFoodStore(ctx, store)
	if err != nil {
		logrus.Fatalf("food store: %v", err)
	}
	logs, err := services.NewLogStore(ctx, store, foods)
	if err != nil {
		logrus.Fatalf("log store: %v", err)
	}
	profile, err := services.NewProfileStore(ctx, store)
	if err != nil {
		logrus.Fatalf("profile store: %v", err)
	}

	var analyzer services.FoodAnalyzer
	if cfg.OpenAIAPIKey != "" {
		analyzer = services.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	r := routes.SetupRouter(routes.Deps{
		Cfg:      cfg,
		Store:    store,
		Logs:     logs,
		Profile:  profile,
		Foods:    foods,
		Analyzer: analyzer,
		Lookup:   services.NewOpenFoodFactsClient(),
		Hub:      services.NewRealtimeHub(),
	})

	logrus.Infof("listening on :%s (storage=%s)", cfg.Port, cfg.StorageBackend)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server: %v", err)
	}
}

func newStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 0)
	case "postgres":
		return storage.NewPostgresStore(cfg.PostgresDSN())
	default:
		return storage.NewMemoryStore(), nil
	}
}
