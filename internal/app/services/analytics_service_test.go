package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/repositories"
)

func TestGetEnrichedSessions_JoinsDisplayNames(t *testing.T) {
	student := models.Student{ID: primitive.NewObjectID(), FirstName: "Yasmine", LastName: "Berrada"}
	subject := models.Subject{ID: primitive.NewObjectID(), Name: "Algèbre"}

	sessions := &fakeSessionStore{sessions: []models.Session{
		{
			ID:          primitive.NewObjectID(),
			StudentID:   student.ID,
			SubjectID:   subject.ID,
			StartedAt:   time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC),
			DurationMin: 45,
			Difficulty:  3,
			Mood:        models.MoodMotivated,
			Period:      models.PeriodMorning,
			Type:        models.TypeExercises,
			Tags:        []string{"revision"},
		},
	}}
	svc := NewAnalyticsService(sessions,
		&fakeStudentStore{students: []models.Student{student}},
		&fakeSubjectStore{subjects: []models.Subject{subject}})

	out, err := svc.GetEnrichedSessions(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Yasmine Berrada", out[0].Student)
	assert.Equal(t, "Algèbre", out[0].Subject)
	assert.Equal(t, 45, out[0].DurationMin)
}

func TestGetEnrichedSessions_DanglingReferencesGetPlaceholders(t *testing.T) {
	sessions := &fakeSessionStore{sessions: []models.Session{
		{
			ID:        primitive.NewObjectID(),
			StudentID: primitive.NewObjectID(),
			SubjectID: primitive.NewObjectID(),
		},
	}}
	svc := NewAnalyticsService(sessions, &fakeStudentStore{}, &fakeSubjectStore{})

	out, err := svc.GetEnrichedSessions(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, out, 1, "a dangling reference must not drop the row")
	assert.Equal(t, "Unknown Student", out[0].Student)
	assert.Equal(t, "Unknown subject", out[0].Subject)
	assert.NotNil(t, out[0].Tags)
}

func TestGetEnrichedSessions_ClampsLimit(t *testing.T) {
	sessions := &fakeSessionStore{}
	svc := NewAnalyticsService(sessions, &fakeStudentStore{}, &fakeSubjectStore{})

	_, err := svc.GetEnrichedSessions(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sessions.lastFindLimit)

	_, err = svc.GetEnrichedSessions(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, int64(200), sessions.lastFindLimit)
}

func TestGetTimeBySubject_SumsAndSortsDescending(t *testing.T) {
	algebra := models.Subject{ID: primitive.NewObjectID(), Name: "Algèbre"}
	physics := models.Subject{ID: primitive.NewObjectID(), Name: "Physique"}

	// Two Algèbre sessions of 30 and 45 minutes arrive from the store as a
	// single grouped total of 75.
	sessions := &fakeSessionStore{subjectTotals: []repositories.SubjectTotal{
		{SubjectID: physics.ID, TotalMinutes: 20},
		{SubjectID: algebra.ID, TotalMinutes: 75},
	}}
	svc := NewAnalyticsService(sessions, &fakeStudentStore{},
		&fakeSubjectStore{subjects: []models.Subject{algebra, physics}})

	out, err := svc.GetTimeBySubject(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Algèbre", out[0].Subject)
	assert.Equal(t, 75, out[0].TotalMinutes)
	assert.Equal(t, "Physique", out[1].Subject)
	assert.Equal(t, 20, out[1].TotalMinutes)
}

func TestGetTimeBySubject_PrunesDeletedSubjects(t *testing.T) {
	algebra := models.Subject{ID: primitive.NewObjectID(), Name: "Algèbre"}

	sessions := &fakeSessionStore{subjectTotals: []repositories.SubjectTotal{
		{SubjectID: algebra.ID, TotalMinutes: 60},
		{SubjectID: primitive.NewObjectID(), TotalMinutes: 999},
	}}
	svc := NewAnalyticsService(sessions, &fakeStudentStore{},
		&fakeSubjectStore{subjects: []models.Subject{algebra}})

	out, err := svc.GetTimeBySubject(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Algèbre", out[0].Subject)
}

func TestGetTimeByPeriod_SortsDescending(t *testing.T) {
	sessions := &fakeSessionStore{periodTotals: []repositories.PeriodTotal{
		{Period: models.PeriodMorning, TotalMinutes: 40},
		{Period: models.PeriodEvening, TotalMinutes: 120},
		{Period: models.PeriodNight, TotalMinutes: 15},
	}}
	svc := NewAnalyticsService(sessions, &fakeStudentStore{}, &fakeSubjectStore{})

	out, err := svc.GetTimeByPeriod(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "soir", out[0].Period)
	assert.Equal(t, "matin", out[1].Period)
	assert.Equal(t, "nuit", out[2].Period)
}

func TestGetDifficultyBySubject_RoundsToTwoDecimals(t *testing.T) {
	algebra := models.Subject{ID: primitive.NewObjectID(), Name: "Algèbre"}
	physics := models.Subject{ID: primitive.NewObjectID(), Name: "Physique"}

	// 14/3 and 7/3 come out of the store unrounded
	sessions := &fakeSessionStore{subjectAverages: []repositories.SubjectAverage{
		{SubjectID: algebra.ID, AvgDifficulty: 14.0 / 3.0},
		{SubjectID: physics.ID, AvgDifficulty: 7.0 / 3.0},
	}}
	svc := NewAnalyticsService(sessions, &fakeStudentStore{},
		&fakeSubjectStore{subjects: []models.Subject{algebra, physics}})

	out, err := svc.GetDifficultyBySubject(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Algèbre", out[0].Subject)
	assert.Equal(t, 4.67, out[0].AvgDifficulty)
	assert.Equal(t, "Physique", out[1].Subject)
	assert.Equal(t, 2.33, out[1].AvgDifficulty)
}

func TestGetTimeByStudent_LabelsWithFullName(t *testing.T) {
	yasmine := models.Student{ID: primitive.NewObjectID(), FirstName: "Yasmine", LastName: "Berrada"}
	omar := models.Student{ID: primitive.NewObjectID(), FirstName: "Omar", LastName: "El Amrani"}

	sessions := &fakeSessionStore{studentTotals: []repositories.StudentTotal{
		{StudentID: yasmine.ID, TotalMinutes: 90},
		{StudentID: omar.ID, TotalMinutes: 150},
		{StudentID: primitive.NewObjectID(), TotalMinutes: 999},
	}}
	svc := NewAnalyticsService(sessions,
		&fakeStudentStore{students: []models.Student{yasmine, omar}}, &fakeSubjectStore{})

	out, err := svc.GetTimeByStudent(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2, "groups for deleted students are pruned")
	assert.Equal(t, "Omar El Amrani", out[0].Student)
	assert.Equal(t, 150, out[0].TotalMinutes)
	assert.Equal(t, "Yasmine Berrada", out[1].Student)
	assert.Equal(t, 90, out[1].TotalMinutes)
}
