package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

// Store is a MongoDB backed implementation of the user and exercise
// repositories. It is safe for concurrent use.
type Store struct {
	client    *mongo.Client
	users     *mongo.Collection
	exercises *mongo.Collection
}

// Connect creates a client for uri. The driver dials lazily, so an
// unreachable server surfaces on the first operation rather than here.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client:    client,
		users:     db.Collection(usersCollection),
		exercises: db.Collection(exercisesCollection),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
