package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "CORS_ORIGINS", "STORE_DRIVER", "MONGO_URI", "MONGO_DB", "DB_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, "exercise-tracker", cfg.MongoDatabase)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Empty(t, cfg.MongoURI)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_PATH", "/tmp/x.db")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EXERCISE_TRACKER_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("EXERCISE_TRACKER_TEST_KEY", "fallback"))

	t.Setenv("EXERCISE_TRACKER_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("EXERCISE_TRACKER_TEST_KEY", "fallback"))
}
