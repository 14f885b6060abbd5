package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is everything the composition root needs to wire the process.
type Config struct {
	Port            string
	JWTSecret       string
	AppPasswordHash string

	// memory | redis | postgres
	StorageBackend string

	RedisAddr     string
	RedisPassword string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	OpenAIAPIKey string
	OpenAIModel  string
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	// A missing .env is fine in containerized deploys; real env wins anyway.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AppPasswordHash: os.Getenv("APP_PASSWORD_HASH"),
		StorageBackend:  getenv("STORAGE_BACKEND", "memory"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          getenv("DB_NAME", "logwell"),
		DBPort:          getenv("DB_PORT", "5432"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AppPasswordHash == "" {
		return nil, fmt.Errorf("APP_PASSWORD_HASH is required")
	}
	return cfg, nil
}

// PostgresDSN assembles the DSN for the postgres document backend.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// InitLogger configures the process-wide logrus logger.
func InitLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	level, err := logrus.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
