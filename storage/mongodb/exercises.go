package mongodb

import (
	"context"
	"exercise-tracker/models"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	userID, err := parseObjectID(exercise.UserID)
	if err != nil {
		return err
	}

	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}
	if _, err := s.exercises.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert exercise: %w", err)
	}

	exercise.ID = doc.ID.Hex()
	// BSON dates carry millisecond precision
	exercise.Date = primitive.NewDateTimeFromTime(exercise.Date).Time().UTC()
	return nil
}

func (s *Store) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	userID, err := parseObjectID(filter.UserID)
	if err != nil {
		return nil, err
	}

	cursor, err := s.exercises.Find(ctx, logFilter(userID, filter), logFindOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}

	exercises := make([]models.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toModel())
	}
	return exercises, nil
}

// logFilter builds {userId, date: {$gte, $lte}} with only the bounds set.
func logFilter(userID primitive.ObjectID, filter models.LogFilter) bson.M {
	query := bson.M{"userId": userID}

	dateRange := bson.M{}
	if filter.From != nil {
		dateRange["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateRange["$lte"] = *filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}

func logFindOptions(filter models.LogFilter) *options.FindOptions {
	opts := options.Find().SetProjection(bson.M{
		"userId":      1,
		"description": 1,
		"duration":    1,
		"date":        1,
	})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return opts
}
