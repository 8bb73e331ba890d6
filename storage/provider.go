package storage

import (
	"context"
	"exercise-tracker/database"
	"exercise-tracker/models"
	"exercise-tracker/storage/mongodb"
	"fmt"
	"log/slog"
	"time"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Provider is the interface for all storage backends. It satisfies both
// services.UserRepository and services.ExerciseRepository.
type Provider interface {
	// ==================== USER OPERATIONS ====================

	CreateUser(ctx context.Context, username string) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// ==================== EXERCISE OPERATIONS ====================

	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error)

	// ==================== LIFECYCLE ====================

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Options selects and configures a backend
type Options struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	SQLitePath    string
}

var (
	_ Provider = (*database.Repository)(nil)
	_ Provider = (*mongodb.Store)(nil)
)

// Open builds the configured provider. A backend that cannot be reached
// is logged, not fatal: the server keeps listening and requests fail
// until the store comes back. Only configuration errors are returned.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (Provider, error) {
	switch opts.Driver {
	case DriverMongo, "":
		store, err := mongodb.Connect(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			logger.Error("mongodb connection error", "error", err)
			return Unavailable(err), nil
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			logger.Error("mongodb connection error", "error", err)
		} else {
			logger.Info("mongodb connected", "database", opts.MongoDatabase)
		}
		return store, nil

	case DriverSQLite:
		db, err := database.New(opts.SQLitePath)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			return Unavailable(err), nil
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			logger.Error("failed to run migrations", "error", err)
			return Unavailable(err), nil
		}
		logger.Info("database initialized", "path", opts.SQLitePath)
		return database.NewRepository(db), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
