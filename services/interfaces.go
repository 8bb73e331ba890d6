package services

import (
	"context"
	"exercise-tracker/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
	// GetUser returns nil and no error when the user does not exist
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ExerciseRepository defines the interface for exercise data access
type ExerciseRepository interface {
	// CreateExercise persists the exercise and sets its ID
	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error)
}
