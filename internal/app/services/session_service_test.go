package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/pkg/apperrors"
)

func validSessionRequest() *dto.CreateSessionRequest {
	return &dto.CreateSessionRequest{
		StudentID:   primitive.NewObjectID().Hex(),
		SubjectID:   primitive.NewObjectID().Hex(),
		StartedAt:   time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC),
		DurationMin: 45,
		Difficulty:  3,
		Mood:        models.MoodMotivated,
		Period:      models.PeriodMorning,
		Type:        models.TypeExercises,
		Tags:        []string{"revision"},
		Notes:       "Révision chapitre 2",
	}
}

func TestCreateSession_ReturnsHexIdentifiers(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store)

	req := validSessionRequest()
	resp, err := svc.CreateSession(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, req.StudentID, resp.StudentID)
	assert.Equal(t, req.SubjectID, resp.SubjectID)
	assert.Equal(t, req.StartedAt, resp.StartedAt)
	assert.Equal(t, []string{"revision"}, resp.Tags)
	assert.Len(t, resp.ID, 24)
}

func TestCreateSession_InvalidStudentID(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store)

	req := validSessionRequest()
	req.StudentID = "zzz"

	resp, err := svc.CreateSession(context.Background(), req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	assert.Empty(t, store.sessions)
}

func TestCreateSession_InvalidSubjectID(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store)

	req := validSessionRequest()
	req.SubjectID = "0123"

	_, err := svc.CreateSession(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	assert.Empty(t, store.sessions)
}

func TestCreateSession_NilTagsBecomeEmptySlice(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store)

	req := validSessionRequest()
	req.Tags = nil

	resp, err := svc.CreateSession(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
}

func TestGetRecentSessions_ClampsLimit(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		expected  int64
	}{
		{"zero becomes the minimum", 0, 1},
		{"negative becomes the minimum", -5, 1},
		{"within range passes through", 50, 50},
		{"over the cap becomes the maximum", 500, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeSessionStore{}
			svc := NewSessionService(store)

			_, err := svc.GetRecentSessions(context.Background(), tc.requested)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, store.lastFindLimit)
		})
	}
}

func TestGetSessionByID_NotFound(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store)

	_, err := svc.GetSessionByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestDeleteSession_RoundTrip(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store)

	created, err := svc.CreateSession(context.Background(), validSessionRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(context.Background(), created.ID))

	_, err = svc.GetSessionByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
