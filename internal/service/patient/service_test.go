package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
	"github.com/jwalitptl/records-api/internal/repository/mocks"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

func TestListPatients(t *testing.T) {
	repo := &mocks.PatientRepository{}
	repo.On("ListWithPrescriptions", mock.Anything).Return([]model.PatientWithPrescriptions{
		{Patient: model.Patient{ID: 1, FirstName: "Anna"}, Prescriptions: []model.Prescription{{ID: 4}}},
	}, nil)

	patients, err := NewService(repo).ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, 4, patients[0].Prescriptions[0].ID)
}

func TestListPatients_Empty(t *testing.T) {
	repo := &mocks.PatientRepository{}
	repo.On("ListWithPrescriptions", mock.Anything).Return(nil, nil)

	patients, err := NewService(repo).ListPatients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, patients)
}

func TestGetPatient(t *testing.T) {
	repo := &mocks.PatientRepository{}
	repo.On("Get", mock.Anything, 1).Return(&model.Patient{ID: 1, FirstName: "Anna"}, nil)
	repo.On("Get", mock.Anything, 2).Return(nil, repository.ErrNotFound)
	repo.On("Get", mock.Anything, 3).Return(nil, errors.New("broken pipe"))
	svc := NewService(repo)

	p, err := svc.GetPatient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.FirstName)

	_, err = svc.GetPatient(context.Background(), 2)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.EqualError(t, err, "Patient with ID 2 not found")

	_, err = svc.GetPatient(context.Background(), 3)
	assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
}
