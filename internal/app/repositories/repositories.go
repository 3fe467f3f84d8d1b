package repositories

import (
	"github.com/studytrack/api/internal/db"
)

// Repositories bundles every collection accessor for dependency wiring
type Repositories struct {
	StudentRepository *StudentRepository
	SubjectRepository *SubjectRepository
	SessionRepository *SessionRepository
}

// NewRepositories creates all repositories over a single store handle
func NewRepositories(store *db.Mongo) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(store),
		SubjectRepository: NewSubjectRepository(store),
		SessionRepository: NewSessionRepository(store),
	}
}
