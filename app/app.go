package app

import (
	"exercise-tracker/services"
	"exercise-tracker/storage"
	"exercise-tracker/validator"
	"log/slog"
)

// App holds all application dependencies
type App struct {
	Store     storage.Provider
	Users     *services.UserService
	Exercises *services.ExerciseService
	Logger    *slog.Logger
}

// New wires the services on top of store
func New(store storage.Provider, logger *slog.Logger) *App {
	v := validator.New()
	return &App{
		Store:     store,
		Users:     services.NewUserService(store, v),
		Exercises: services.NewExerciseService(store, store, v),
		Logger:    logger,
	}
}
