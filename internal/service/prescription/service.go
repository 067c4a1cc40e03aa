package prescription

import (
	"context"
	"errors"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
	"github.com/jwalitptl/records-api/pkg/messaging"
	"github.com/jwalitptl/records-api/pkg/validator"
)

type PrescriptionService interface {
	CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error)
}

type Service struct {
	repos     repository.Repositories
	tx        repository.Transactor
	validator validator.Validator
	publisher messaging.Publisher
}

func NewService(repos repository.Repositories, tx repository.Transactor, v validator.Validator, publisher messaging.Publisher) *Service {
	return &Service{
		repos:     repos,
		tx:        tx,
		validator: v,
		publisher: publisher,
	}
}

// CreatePrescription validates the request, then in one transaction resolves
// or creates the patient and writes the prescription with its line items.
// The committed prescription is read back with doctor and medicament details.
func (s *Service) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	if err := s.validate(ctx, s.repos.Catalog, req); err != nil {
		return nil, err
	}

	var id int
	err := s.tx.WithinTx(ctx, nil, func(repos repository.Repositories) error {
		patientID, err := resolvePatient(ctx, repos.Patients, &req.Patient)
		if err != nil {
			return err
		}

		id, err = repos.Prescriptions.Create(ctx, &model.NewPrescription{
			Date:      req.Date,
			DueDate:   req.DueDate,
			PatientID: patientID,
			DoctorID:  req.DoctorID,
			Items:     req.Medicaments,
		})
		return err
	})
	if err != nil {
		return nil, apperrors.Wrap(err)
	}

	prescription, err := s.repos.Prescriptions.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	messaging.Notify(ctx, s.publisher, messaging.EventPrescriptionCreated, prescription)
	return prescription, nil
}

// resolvePatient returns the id of the patient named by input, inserting a new
// patient from the supplied demographics when that id is unknown.
func resolvePatient(ctx context.Context, patients repository.PatientRepository, input *model.PatientInput) (int, error) {
	existing, err := patients.Get(ctx, input.ID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	patient := &model.Patient{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.DateOfBirth,
	}
	if err := patients.Create(ctx, patient); err != nil {
		return 0, err
	}
	return patient.ID, nil
}
