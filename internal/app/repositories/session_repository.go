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

// SubjectTotal is one $group row: total minutes keyed by subject
type SubjectTotal struct {
	SubjectID    primitive.ObjectID `bson:"_id"`
	TotalMinutes int                `bson:"totalMinutes"`
}

// PeriodTotal is one $group row: total minutes keyed by period value
type PeriodTotal struct {
	Period       string `bson:"_id"`
	TotalMinutes int    `bson:"totalMinutes"`
}

// SubjectAverage is one $group row: mean difficulty keyed by subject.
// The average is unrounded here; presentation rounding is the service's job.
type SubjectAverage struct {
	SubjectID     primitive.ObjectID `bson:"_id"`
	AvgDifficulty float64            `bson:"avgDifficulty"`
}

// StudentTotal is one $group row: total minutes keyed by student
type StudentTotal struct {
	StudentID    primitive.ObjectID `bson:"_id"`
	TotalMinutes int                `bson:"totalMinutes"`
}

// SessionRepository handles session collection operations, including the
// grouped-aggregation passes behind the analytics views
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store *db.Mongo) *SessionRepository {
	return &SessionRepository{
		collection: store.Collection(db.SessionsCollection),
	}
}

// Insert stores a new session and fills in its assigned identifier
func (r *SessionRepository) Insert(ctx context.Context, session *models.Session) error {
	res, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting session")
		return fmt.Errorf("error inserting session: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	session.ID = id
	return nil
}

// FindRecent retrieves up to limit sessions, newest startedAt first
func (r *SessionRepository) FindRecent(ctx context.Context, limit int64) ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying sessions")
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// FindByID retrieves one session by identifier
func (r *SessionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error) {
	session := &models.Session{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Str("sessionID", id.Hex()).Msg("Error finding session")
		return nil, fmt.Errorf("error finding session: %w", err)
	}
	return session, nil
}

// DeleteByID removes one session, failing when nothing matched
func (r *SessionRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("sessionID", id.Hex()).Msg("Error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// SumDurationBySubject groups every session by subject and sums durationMin.
// Grouping originates from sessions, so subjects with no sessions never appear.
func (r *SessionRepository) SumDurationBySubject(ctx context.Context) ([]SubjectTotal, error) {
	pipe := []bson.M{
		{"$group": bson.M{
			"_id":          "$subjectId",
			"totalMinutes": bson.M{"$sum": "$durationMin"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipe)
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating time by subject")
		return nil, fmt.Errorf("error aggregating time by subject: %w", err)
	}
	defer cursor.Close(ctx)

	var out []SubjectTotal
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding time by subject: %w", err)
	}
	return out, nil
}

// SumDurationByPeriod groups every session by its period value and sums durationMin
func (r *SessionRepository) SumDurationByPeriod(ctx context.Context) ([]PeriodTotal, error) {
	pipe := []bson.M{
		{"$group": bson.M{
			"_id":          "$period",
			"totalMinutes": bson.M{"$sum": "$durationMin"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipe)
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating time by period")
		return nil, fmt.Errorf("error aggregating time by period: %w", err)
	}
	defer cursor.Close(ctx)

	var out []PeriodTotal
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding time by period: %w", err)
	}
	return out, nil
}

// AvgDifficultyBySubject groups every session by subject and averages difficulty
func (r *SessionRepository) AvgDifficultyBySubject(ctx context.Context) ([]SubjectAverage, error) {
	pipe := []bson.M{
		{"$group": bson.M{
			"_id":           "$subjectId",
			"avgDifficulty": bson.M{"$avg": "$difficulty"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipe)
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating difficulty by subject")
		return nil, fmt.Errorf("error aggregating difficulty by subject: %w", err)
	}
	defer cursor.Close(ctx)

	var out []SubjectAverage
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding difficulty by subject: %w", err)
	}
	return out, nil
}

// SumDurationByStudent groups every session by student and sums durationMin
func (r *SessionRepository) SumDurationByStudent(ctx context.Context) ([]StudentTotal, error) {
	pipe := []bson.M{
		{"$group": bson.M{
			"_id":          "$studentId",
			"totalMinutes": bson.M{"$sum": "$durationMin"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipe)
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating time by student")
		return nil, fmt.Errorf("error aggregating time by student: %w", err)
	}
	defer cursor.Close(ctx)

	var out []StudentTotal
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding time by student: %w", err)
	}
	return out, nil
}
