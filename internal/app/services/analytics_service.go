package services

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/app/repositories"
	"github.com/studytrack/api/internal/pkg/helpers"
)

// Placeholder labels substituted when a session references a deleted
// student or subject. The student name is assembled from the two parts so a
// dangling reference renders as "Unknown Student".
const (
	PlaceholderFirstName = "Unknown"
	PlaceholderLastName  = "Student"
	PlaceholderSubject   = "Unknown subject"
)

// SessionAggregator is the grouped-aggregation surface of the session
// repository the analytics views are built on
type SessionAggregator interface {
	FindRecent(ctx context.Context, limit int64) ([]models.Session, error)
	SumDurationBySubject(ctx context.Context) ([]repositories.SubjectTotal, error)
	SumDurationByPeriod(ctx context.Context) ([]repositories.PeriodTotal, error)
	AvgDifficultyBySubject(ctx context.Context) ([]repositories.SubjectAverage, error)
	SumDurationByStudent(ctx context.Context) ([]repositories.StudentTotal, error)
}

// AnalyticsService defines the read-only enrichment and aggregation views
// over the session collection
type AnalyticsService interface {
	GetEnrichedSessions(ctx context.Context, limit int) ([]dto.EnrichedSessionResponse, error)
	GetTimeBySubject(ctx context.Context) ([]dto.SubjectTimeResponse, error)
	GetTimeByPeriod(ctx context.Context) ([]dto.PeriodTimeResponse, error)
	GetDifficultyBySubject(ctx context.Context) ([]dto.SubjectDifficultyResponse, error)
	GetTimeByStudent(ctx context.Context) ([]dto.StudentTimeResponse, error)
}

// analyticsServiceImpl implements the AnalyticsService interface. Grouping
// runs in the store; the dimension joins are in-memory hash lookups over a
// bulk fetch, so no per-row round trips happen.
type analyticsServiceImpl struct {
	sessionRepo SessionAggregator
	studentRepo StudentStore
	subjectRepo SubjectStore
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(sessionRepo SessionAggregator, studentRepo StudentStore, subjectRepo SubjectStore) AnalyticsService {
	return &analyticsServiceImpl{
		sessionRepo: sessionRepo,
		studentRepo: studentRepo,
		subjectRepo: subjectRepo,
	}
}

// GetEnrichedSessions returns the newest sessions joined to their student and
// subject display names. A dangling reference never fails the list; only that
// row's labels fall back to the placeholders.
func (s *analyticsServiceImpl) GetEnrichedSessions(ctx context.Context, limit int) ([]dto.EnrichedSessionResponse, error) {
	limit = helpers.ClampLimit(limit, helpers.MinListLimit, helpers.MaxListLimit)

	sessions, err := s.sessionRepo.FindRecent(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}

	studentIDs := make([]primitive.ObjectID, 0, len(sessions))
	subjectIDs := make([]primitive.ObjectID, 0, len(sessions))
	seenStudents := map[primitive.ObjectID]struct{}{}
	seenSubjects := map[primitive.ObjectID]struct{}{}
	for i := range sessions {
		if _, ok := seenStudents[sessions[i].StudentID]; !ok {
			seenStudents[sessions[i].StudentID] = struct{}{}
			studentIDs = append(studentIDs, sessions[i].StudentID)
		}
		if _, ok := seenSubjects[sessions[i].SubjectID]; !ok {
			seenSubjects[sessions[i].SubjectID] = struct{}{}
			subjectIDs = append(subjectIDs, sessions[i].SubjectID)
		}
	}

	students, err := s.studentRepo.FindByIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching students for enrichment: %w", err)
	}
	subjects, err := s.subjectRepo.FindByIDs(ctx, subjectIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching subjects for enrichment: %w", err)
	}

	out := make([]dto.EnrichedSessionResponse, 0, len(sessions))
	for i := range sessions {
		session := &sessions[i]

		studentName := PlaceholderFirstName + " " + PlaceholderLastName
		if student, ok := students[session.StudentID]; ok {
			studentName = student.FullName()
		}

		subjectName := PlaceholderSubject
		if subject, ok := subjects[session.SubjectID]; ok {
			subjectName = subject.Name
		}

		tags := session.Tags
		if tags == nil {
			tags = []string{}
		}

		out = append(out, dto.EnrichedSessionResponse{
			ID:          session.ID.Hex(),
			Student:     studentName,
			Subject:     subjectName,
			StartedAt:   session.StartedAt,
			DurationMin: session.DurationMin,
			Difficulty:  session.Difficulty,
			Mood:        session.Mood,
			Period:      session.Period,
			Type:        session.Type,
			Tags:        tags,
			Notes:       session.Notes,
		})
	}
	return out, nil
}

// GetTimeBySubject sums durationMin per subject. The grouping is driven by
// sessions, so subjects with no sessions are absent; groups whose subject no
// longer exists are pruned.
func (s *analyticsServiceImpl) GetTimeBySubject(ctx context.Context) ([]dto.SubjectTimeResponse, error) {
	groups, err := s.sessionRepo.SumDurationBySubject(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing time by subject: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.SubjectID)
	}
	subjects, err := s.subjectRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching subjects for time by subject: %w", err)
	}

	out := make([]dto.SubjectTimeResponse, 0, len(groups))
	for _, g := range groups {
		subject, ok := subjects[g.SubjectID]
		if !ok {
			continue
		}
		out = append(out, dto.SubjectTimeResponse{
			Subject:      subject.Name,
			TotalMinutes: g.TotalMinutes,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMinutes > out[j].TotalMinutes
	})
	return out, nil
}

// GetTimeByPeriod sums durationMin per period value. No dimension join is needed.
func (s *analyticsServiceImpl) GetTimeByPeriod(ctx context.Context) ([]dto.PeriodTimeResponse, error) {
	groups, err := s.sessionRepo.SumDurationByPeriod(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing time by period: %w", err)
	}

	out := make([]dto.PeriodTimeResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.PeriodTimeResponse{
			Period:       g.Period,
			TotalMinutes: g.TotalMinutes,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMinutes > out[j].TotalMinutes
	})
	return out, nil
}

// GetDifficultyBySubject averages difficulty per subject, rounded to 2
// decimal places with halves away from zero (math.Round).
func (s *analyticsServiceImpl) GetDifficultyBySubject(ctx context.Context) ([]dto.SubjectDifficultyResponse, error) {
	groups, err := s.sessionRepo.AvgDifficultyBySubject(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing difficulty by subject: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.SubjectID)
	}
	subjects, err := s.subjectRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching subjects for difficulty by subject: %w", err)
	}

	out := make([]dto.SubjectDifficultyResponse, 0, len(groups))
	for _, g := range groups {
		subject, ok := subjects[g.SubjectID]
		if !ok {
			continue
		}
		out = append(out, dto.SubjectDifficultyResponse{
			Subject:       subject.Name,
			AvgDifficulty: helpers.Round2(g.AvgDifficulty),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgDifficulty > out[j].AvgDifficulty
	})
	return out, nil
}

// GetTimeByStudent sums durationMin per student, labeled with the
// concatenated first and last name.
func (s *analyticsServiceImpl) GetTimeByStudent(ctx context.Context) ([]dto.StudentTimeResponse, error) {
	groups, err := s.sessionRepo.SumDurationByStudent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing time by student: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.StudentID)
	}
	students, err := s.studentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching students for time by student: %w", err)
	}

	out := make([]dto.StudentTimeResponse, 0, len(groups))
	for _, g := range groups {
		student, ok := students[g.StudentID]
		if !ok {
			continue
		}
		out = append(out, dto.StudentTimeResponse{
			Student:      student.FullName(),
			TotalMinutes: g.TotalMinutes,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMinutes > out[j].TotalMinutes
	})
	return out, nil
}
