package mongodb

import (
	"context"
	"errors"
	"exercise-tracker/models"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) CreateUser(ctx context.Context, username string) (*models.User, error) {
	doc := userDocument{ID: primitive.NewObjectID(), Username: username}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	user := doc.toModel()
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	var doc userDocument
	err = s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user := doc.toModel()
	return &user, nil
}

// ListUsers returns users in natural order
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "username": 1})
	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

// parseObjectID turns a malformed id into a store error, matching how the
// driver rejects it on cast.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid object id %q: %w", id, err)
	}
	return oid, nil
}
