package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/pkg/helpers"
)

// SessionStore is the session persistence surface the services depend on,
// implemented by repositories.SessionRepository
type SessionStore interface {
	Insert(ctx context.Context, session *models.Session) error
	FindRecent(ctx context.Context, limit int64) ([]models.Session, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// SessionService defines the interface for session-related operations
type SessionService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetRecentSessions(ctx context.Context, limit int) ([]dto.SessionResponse, error)
	GetSessionByID(ctx context.Context, id string) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, id string) error
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessionRepo SessionStore
}

// NewSessionService creates a new session service instance
func NewSessionService(sessionRepo SessionStore) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
	}
}

// CreateSession stores a new study session. The referenced ids must be valid
// ObjectID hex, but the referenced documents are not required to exist.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	studentID, err := parseObjectID(req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("studentId: %w", err)
	}
	subjectID, err := parseObjectID(req.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("subjectId: %w", err)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	session := &models.Session{
		StudentID:   studentID,
		SubjectID:   subjectID,
		StartedAt:   req.StartedAt,
		DurationMin: req.DurationMin,
		Difficulty:  req.Difficulty,
		Mood:        req.Mood,
		Period:      req.Period,
		Type:        req.Type,
		Tags:        tags,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return toSessionResponse(session), nil
}

// GetRecentSessions retrieves sessions newest first. The limit is clamped to
// the documented [1, 200] window, so limit=0 becomes 1 and limit=500 becomes 200.
func (s *sessionServiceImpl) GetRecentSessions(ctx context.Context, limit int) ([]dto.SessionResponse, error) {
	limit = helpers.ClampLimit(limit, helpers.MinListLimit, helpers.MaxListLimit)

	sessions, err := s.sessionRepo.FindRecent(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, *toSessionResponse(&sessions[i]))
	}
	return out, nil
}

// GetSessionByID retrieves a session by its external identifier
func (s *sessionServiceImpl) GetSessionByID(ctx context.Context, id string) (*dto.SessionResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// DeleteSession removes a session by its external identifier
func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.sessionRepo.DeleteByID(ctx, oid)
}

func toSessionResponse(session *models.Session) *dto.SessionResponse {
	tags := session.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.SessionResponse{
		ID:          session.ID.Hex(),
		StudentID:   session.StudentID.Hex(),
		SubjectID:   session.SubjectID.Hex(),
		StartedAt:   session.StartedAt,
		DurationMin: session.DurationMin,
		Difficulty:  session.Difficulty,
		Mood:        session.Mood,
		Period:      session.Period,
		Type:        session.Type,
		Tags:        tags,
		Notes:       session.Notes,
	}
}
