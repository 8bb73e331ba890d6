package services

import (
	"context"
	"exercise-tracker/models"
	"exercise-tracker/validator"
	"fmt"
)

// UserService handles business logic for users
type UserService struct {
	repo      UserRepository
	validator *validator.Validator
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, v *validator.Validator) *UserService {
	return &UserService{
		repo:      repo,
		validator: v,
	}
}

// Create validates the request and stores a new user. Usernames are not
// required to be unique.
func (us *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := us.validator.Validate(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := us.repo.CreateUser(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// List returns every user in store order
func (us *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := us.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}
