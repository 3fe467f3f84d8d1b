package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/pkg/apperrors"
)

// StudentStore is the student persistence surface the services depend on,
// implemented by repositories.StudentRepository
type StudentStore interface {
	Insert(ctx context.Context, student *models.Student) error
	EmailExists(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, limit int64) ([]models.Student, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Student, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// CreateStudent stores a new student after the application-layer email
// uniqueness check. The check-then-act window is an accepted race: there is
// no unique constraint in the store backing it up.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	now := time.Now().UTC()
	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Program:   req.Program,
		School:    req.School,
		Timezone:  req.Timezone,
		Role:      models.DefaultRole,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if student.School == "" {
		student.School = models.DefaultSchool
	}
	if student.Timezone == "" {
		student.Timezone = models.DefaultTimezone
	}

	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return toStudentResponse(student), nil
}

// GetAllStudents retrieves stored students, bounded by StudentListLimit
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAll(ctx, StudentListLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *toStudentResponse(&students[i]))
	}
	return out, nil
}

// GetStudentByID retrieves a student by its external identifier
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// DeleteStudent removes a student by its external identifier
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.studentRepo.DeleteByID(ctx, oid)
}

func toStudentResponse(student *models.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:        student.ID.Hex(),
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		Program:   student.Program,
		School:    student.School,
		Timezone:  student.Timezone,
		Role:      student.Role,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}
