package storage

import (
	"context"
	"exercise-tracker/models"
	"fmt"
)

type unavailable struct {
	err error
}

// Unavailable returns a Provider whose every operation fails with cause.
// It stands in for a store that could not be opened at startup.
func Unavailable(cause error) Provider {
	return &unavailable{err: fmt.Errorf("store unavailable: %w", cause)}
}

func (u *unavailable) CreateUser(ctx context.Context, username string) (*models.User, error) {
	return nil, u.err
}

func (u *unavailable) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return nil, u.err
}

func (u *unavailable) ListUsers(ctx context.Context) ([]models.User, error) {
	return nil, u.err
}

func (u *unavailable) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	return u.err
}

func (u *unavailable) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	return nil, u.err
}

func (u *unavailable) Ping(ctx context.Context) error { return u.err }

func (u *unavailable) Close(ctx context.Context) error { return nil }
