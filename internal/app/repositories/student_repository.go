package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/db"
	"github.com/studytrack/api/internal/pkg/apperrors"
	"github.com/studytrack/api/internal/pkg/logger"
)

// StudentRepository handles student collection operations
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(store *db.Mongo) *StudentRepository {
	return &StudentRepository{
		collection: store.Collection(db.StudentsCollection),
	}
}

// Insert stores a new student and fills in its assigned identifier
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	res, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting student")
		return fmt.Errorf("error inserting student: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	student.ID = id
	return nil
}

// EmailExists reports whether a student with this email is already stored.
// This is the application-layer uniqueness check run before insert.
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		logger.Error().Err(err).Msg("Error checking student email")
		return false, fmt.Errorf("error checking student email: %w", err)
	}
	return true, nil
}

// FindAll retrieves up to limit students in insertion order
func (r *StudentRepository) FindAll(ctx context.Context, limit int64) ([]models.Student, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

// FindByID retrieves one student by identifier
func (r *StudentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id.Hex()).Msg("Error finding student")
		return nil, fmt.Errorf("error finding student: %w", err)
	}
	return student, nil
}

// FindByIDs bulk-fetches students keyed by identifier, for in-memory joins.
// Identifiers with no matching document are simply absent from the map.
func (r *StudentRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Student, error) {
	byID := make(map[primitive.ObjectID]models.Student, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error().Err(err).Msg("Error bulk fetching students")
		return nil, fmt.Errorf("error bulk fetching students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	for _, s := range students {
		byID[s.ID] = s
	}
	return byID, nil
}

// DeleteByID removes one student, failing when nothing matched
func (r *StudentRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("studentID", id.Hex()).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
