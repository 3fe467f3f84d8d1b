package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studytrack/api/internal/config"
)

// Collection names exposed by the store
const (
	StudentsCollection = "students"
	SubjectsCollection = "subjects"
	SessionsCollection = "sessions"
)

// Mongo wraps the driver client and the application database handle.
// It owns the connection lifecycle: construct with NewMongo, release with Close.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongo connects to the document store and verifies the connection with a ping
func NewMongo(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb is not reachable: %w", err)
	}

	return &Mongo{
		client:   client,
		database: client.Database(cfg.Database.Name),
	}, nil
}

// Collection returns a named collection from the application database
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping verifies the store is still reachable
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close releases the underlying connections
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
