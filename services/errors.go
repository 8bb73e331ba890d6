package services

import "errors"

// Common service-level errors
var (
	ErrValidation      = errors.New("validation failed")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidDuration = errors.New("invalid duration")
)
