package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	CORSOrigins   string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DBPath        string
}

// Load reads configuration from the environment, after applying a .env
// file if one exists. A missing MONGO_URI is not fatal; the store
// reports it when first used.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          GetEnv("PORT", "3000"),
		Env:           GetEnv("ENV", "development"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:   GetEnv("CORS_ORIGINS", "*"),
		StoreDriver:   GetEnv("STORE_DRIVER", "mongo"),
		MongoURI:      GetEnv("MONGO_URI", ""),
		MongoDatabase: GetEnv("MONGO_DB", "exercise-tracker"),
		DBPath:        GetEnv("DB_PATH", "./data/exercise-tracker.db"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
