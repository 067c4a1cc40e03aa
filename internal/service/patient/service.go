package patient

import (
	"context"
	"errors"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]model.PatientWithPrescriptions, error)
	GetPatient(ctx context.Context, id int) (*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// ListPatients returns every patient with nested prescriptions.
func (s *Service) ListPatients(ctx context.Context) ([]model.PatientWithPrescriptions, error) {
	patients, err := s.repo.ListWithPrescriptions(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if patients == nil {
		patients = []model.PatientWithPrescriptions{}
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id int) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFoundf("Patient with ID %d not found", id)
	}
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return patient, nil
}
