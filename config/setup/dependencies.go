package setup

import (
	"context"
	"exercise-tracker/app"
	"exercise-tracker/config"
	"exercise-tracker/storage"
	"log/slog"
	"time"
)

// InitStore opens the configured storage backend
func InitStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Provider, error) {
	return storage.Open(ctx, storage.Options{
		Driver:        cfg.StoreDriver,
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
		SQLitePath:    cfg.DBPath,
	}, logger)
}

// InitApp initializes the application with all dependencies
func InitApp(store storage.Provider, logger *slog.Logger) *app.App {
	application := app.New(store, logger)
	logger.Info("application initialized")
	return application
}

// Shutdown closes the store once the server has stopped
func Shutdown(store storage.Provider, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.Close(ctx); err != nil {
		logger.Error("failed to close store", "error", err)
		return
	}
	logger.Info("store closed")
}
