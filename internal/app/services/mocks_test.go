package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/repositories"
	"github.com/studytrack/api/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore for service tests
type fakeStudentStore struct {
	students    []models.Student
	insertErr   error
	emailErr    error
	findAllErr  error
	findByIDErr error
	deleteErr   error

	insertCalls int
	findCalls   int
	deleteCalls int
}

func (f *fakeStudentStore) Insert(_ context.Context, student *models.Student) error {
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	student.ID = primitive.NewObjectID()
	f.students = append(f.students, *student)
	return nil
}

func (f *fakeStudentStore) EmailExists(_ context.Context, email string) (bool, error) {
	if f.emailErr != nil {
		return false, f.emailErr
	}
	for _, s := range f.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) FindAll(_ context.Context, limit int64) ([]models.Student, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	if int64(len(f.students)) > limit {
		return f.students[:limit], nil
	}
	return f.students, nil
}

func (f *fakeStudentStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	f.findCalls++
	if f.findByIDErr != nil {
		return nil, f.findByIDErr
	}
	for i := range f.students {
		if f.students[i].ID == id {
			return &f.students[i], nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Student, error) {
	out := map[primitive.ObjectID]models.Student{}
	for _, id := range ids {
		for i := range f.students {
			if f.students[i].ID == id {
				out[id] = f.students[i]
			}
		}
	}
	return out, nil
}

func (f *fakeStudentStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.students {
		if f.students[i].ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

// fakeSubjectStore is an in-memory SubjectStore for service tests
type fakeSubjectStore struct {
	subjects  []models.Subject
	insertErr error
}

func (f *fakeSubjectStore) Insert(_ context.Context, subject *models.Subject) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	subject.ID = primitive.NewObjectID()
	f.subjects = append(f.subjects, *subject)
	return nil
}

func (f *fakeSubjectStore) FindAll(_ context.Context, limit int64) ([]models.Subject, error) {
	if int64(len(f.subjects)) > limit {
		return f.subjects[:limit], nil
	}
	return f.subjects, nil
}

func (f *fakeSubjectStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Subject, error) {
	out := map[primitive.ObjectID]models.Subject{}
	for _, id := range ids {
		for i := range f.subjects {
			if f.subjects[i].ID == id {
				out[id] = f.subjects[i]
			}
		}
	}
	return out, nil
}

// fakeSessionStore covers both SessionStore and SessionAggregator
type fakeSessionStore struct {
	sessions  []models.Session
	insertErr error

	lastFindLimit int64

	subjectTotals   []repositories.SubjectTotal
	periodTotals    []repositories.PeriodTotal
	subjectAverages []repositories.SubjectAverage
	studentTotals   []repositories.StudentTotal
}

func (f *fakeSessionStore) Insert(_ context.Context, session *models.Session) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	session.ID = primitive.NewObjectID()
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionStore) FindRecent(_ context.Context, limit int64) ([]models.Session, error) {
	f.lastFindLimit = limit
	if int64(len(f.sessions)) > limit {
		return f.sessions[:limit], nil
	}
	return f.sessions, nil
}

func (f *fakeSessionStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			return &f.sessions[i], nil
		}
	}
	return nil, apperrors.ErrSessionNotFound
}

func (f *fakeSessionStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSessionNotFound
}

func (f *fakeSessionStore) SumDurationBySubject(_ context.Context) ([]repositories.SubjectTotal, error) {
	return f.subjectTotals, nil
}

func (f *fakeSessionStore) SumDurationByPeriod(_ context.Context) ([]repositories.PeriodTotal, error) {
	return f.periodTotals, nil
}

func (f *fakeSessionStore) AvgDifficultyBySubject(_ context.Context) ([]repositories.SubjectAverage, error) {
	return f.subjectAverages, nil
}

func (f *fakeSessionStore) SumDurationByStudent(_ context.Context) ([]repositories.StudentTotal, error) {
	return f.studentTotals, nil
}
