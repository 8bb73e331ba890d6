package services

import (
	"context"
	"exercise-tracker/models"
	"exercise-tracker/utils"
	"exercise-tracker/validator"
	"fmt"
	"time"
)

// ExerciseService handles business logic for exercises and logs
type ExerciseService struct {
	exercises ExerciseRepository
	users     UserRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewExerciseService creates a new exercise service
func NewExerciseService(exercises ExerciseRepository, users UserRepository, v *validator.Validator) *ExerciseService {
	return &ExerciseService{
		exercises: exercises,
		users:     users,
		validator: v,
		now:       time.Now,
	}
}

// Add records an exercise for userID. A missing or unparsable date
// means now. The user is resolved before anything is written, so an
// unknown user leaves no exercise behind.
func (es *ExerciseService) Add(ctx context.Context, userID string, req models.CreateExerciseRequest) (*models.ExerciseResponse, error) {
	if err := es.validator.Validate(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	duration, ok := utils.ParseLeadingInt(string(req.Duration))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, req.Duration)
	}

	date := es.now().UTC()
	if d, ok := utils.ParseDate(req.Date); ok {
		date = d
	}

	user, err := es.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Description: req.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := es.exercises.CreateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to save exercise: %w", err)
	}

	return &models.ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        utils.FormatDate(exercise.Date),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}, nil
}

// Log returns the user's exercises within the optional [from, to] range.
// Unparsable bounds are ignored. Count reflects the returned page.
func (es *ExerciseService) Log(ctx context.Context, userID string, q models.LogQuery) (*models.LogResponse, error) {
	filter := models.LogFilter{UserID: userID}
	if from, ok := utils.ParseDate(q.From); ok {
		filter.From = &from
	}
	if to, ok := utils.ParseDate(q.To); ok {
		filter.To = &to
	}
	filter.Limit = normalizeLimit(q.Limit)

	user, err := es.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exercises, err := es.exercises.FindExercises(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exercise log: %w", err)
	}

	log := make([]models.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, models.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        utils.FormatDate(e.Date),
		})
	}

	return &models.LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}

func (es *ExerciseService) lookupUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := es.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return user, nil
}

// normalizeLimit follows document-store limit rules: zero or garbage is
// no cap, a negative value caps at its magnitude.
func normalizeLimit(raw string) int {
	n, ok := utils.ParseLeadingInt(raw)
	if !ok {
		return 0
	}
	if n < 0 {
		return -n
	}
	return n
}
