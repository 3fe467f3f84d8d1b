package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/api/internal/app/models/dto"
)

func TestCreateSubject_DefaultsCoefficient(t *testing.T) {
	store := &fakeSubjectStore{}
	svc := NewSubjectService(store)

	resp, err := svc.CreateSubject(context.Background(), &dto.CreateSubjectRequest{
		Name:    "Algèbre",
		Program: "CS",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Coefficient)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateSubject_KeepsExplicitCoefficient(t *testing.T) {
	store := &fakeSubjectStore{}
	svc := NewSubjectService(store)

	coefficient := 5
	resp, err := svc.CreateSubject(context.Background(), &dto.CreateSubjectRequest{
		Name:        "Physique",
		Program:     "CS",
		Coefficient: &coefficient,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Coefficient)
}

func TestGetAllSubjects_ReturnsStored(t *testing.T) {
	store := &fakeSubjectStore{}
	svc := NewSubjectService(store)

	_, err := svc.CreateSubject(context.Background(), &dto.CreateSubjectRequest{Name: "Algèbre", Program: "CS"})
	require.NoError(t, err)
	_, err = svc.CreateSubject(context.Background(), &dto.CreateSubjectRequest{Name: "Physique", Program: "CS"})
	require.NoError(t, err)

	out, err := svc.GetAllSubjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
