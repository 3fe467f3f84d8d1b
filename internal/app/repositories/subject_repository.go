package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/db"
	"github.com/studytrack/api/internal/pkg/logger"
)

// SubjectRepository handles subject collection operations
type SubjectRepository struct {
	collection *mongo.Collection
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(store *db.Mongo) *SubjectRepository {
	return &SubjectRepository{
		collection: store.Collection(db.SubjectsCollection),
	}
}

// Insert stores a new subject and fills in its assigned identifier
func (r *SubjectRepository) Insert(ctx context.Context, subject *models.Subject) error {
	res, err := r.collection.InsertOne(ctx, subject)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting subject")
		return fmt.Errorf("error inserting subject: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	subject.ID = id
	return nil
}

// FindAll retrieves up to limit subjects in insertion order
func (r *SubjectRepository) FindAll(ctx context.Context, limit int64) ([]models.Subject, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying subjects")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer cursor.Close(ctx)

	subjects := []models.Subject{}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("error decoding subjects: %w", err)
	}
	return subjects, nil
}

// FindByIDs bulk-fetches subjects keyed by identifier, for in-memory joins.
// Identifiers with no matching document are simply absent from the map.
func (r *SubjectRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Subject, error) {
	byID := make(map[primitive.ObjectID]models.Subject, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error().Err(err).Msg("Error bulk fetching subjects")
		return nil, fmt.Errorf("error bulk fetching subjects: %w", err)
	}
	defer cursor.Close(ctx)

	var subjects []models.Subject
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("error decoding subjects: %w", err)
	}
	for _, s := range subjects {
		byID[s.ID] = s
	}
	return byID, nil
}
