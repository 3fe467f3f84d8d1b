package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the read paths rely on. The email index is
// deliberately NOT unique: email uniqueness is an application-layer check
// before insert, and two concurrent creates with the same email may both
// succeed. That race is accepted for this domain's contention level.
func EnsureIndexes(ctx context.Context, m *Mongo) error {
	sessionIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "startedAt", Value: -1}}},
		{Keys: bson.D{{Key: "subjectId", Value: 1}}},
		{Keys: bson.D{{Key: "studentId", Value: 1}}},
	}
	if _, err := m.Collection(SessionsCollection).Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}

	emailIndex := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := m.Collection(StudentsCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("failed to create student email index: %w", err)
	}

	return nil
}
