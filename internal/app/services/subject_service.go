package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/models/dto"
)

// SubjectStore is the subject persistence surface the services depend on,
// implemented by repositories.SubjectRepository
type SubjectStore interface {
	Insert(ctx context.Context, subject *models.Subject) error
	FindAll(ctx context.Context, limit int64) ([]models.Subject, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Subject, error)
}

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetAllSubjects(ctx context.Context) ([]dto.SubjectResponse, error)
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo SubjectStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo SubjectStore) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
	}
}

// CreateSubject stores a new subject, defaulting the coefficient when omitted
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	coefficient := models.DefaultCoefficient
	if req.Coefficient != nil {
		coefficient = *req.Coefficient
	}

	now := time.Now().UTC()
	subject := &models.Subject{
		Name:        req.Name,
		Program:     req.Program,
		Coefficient: coefficient,
		Color:       req.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.subjectRepo.Insert(ctx, subject); err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}
	return toSubjectResponse(subject), nil
}

// GetAllSubjects retrieves stored subjects, bounded by SubjectListLimit
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.subjectRepo.FindAll(ctx, SubjectListLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}

	out := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		out = append(out, *toSubjectResponse(&subjects[i]))
	}
	return out, nil
}

func toSubjectResponse(subject *models.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:          subject.ID.Hex(),
		Name:        subject.Name,
		Program:     subject.Program,
		Coefficient: subject.Coefficient,
		Color:       subject.Color,
	}
}
