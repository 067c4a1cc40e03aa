package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(q sqlx.ExtContext) repository.PatientRepository {
	return &patientRepository{NewBaseRepository(q, nil)}
}

const patientColumns = `
	IdPatient AS id_patient,
	FirstName AS first_name,
	LastName AS last_name,
	BirthDate AS birth_date`

func (r *patientRepository) Get(ctx context.Context, id int) (patient *model.Patient, err error) {
	defer r.track("get_patient")(&err)

	var p model.Patient
	err = sqlx.GetContext(ctx, r.q, &p, `SELECT`+patientColumns+` FROM Patient WHERE IdPatient = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts the patient and stores the generated id on it.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (err error) {
	defer r.track("create_patient")(&err)

	query := `
		INSERT INTO Patient (FirstName, LastName, BirthDate)
		VALUES ($1, $2, $3)
		RETURNING IdPatient`
	if err = sqlx.GetContext(ctx, r.q, &patient.ID, query, patient.FirstName, patient.LastName, patient.BirthDate); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) ListWithPrescriptions(ctx context.Context) (result []model.PatientWithPrescriptions, err error) {
	defer r.track("list_patients")(&err)

	var patients []model.Patient
	if err = sqlx.SelectContext(ctx, r.q, &patients, `SELECT`+patientColumns+` FROM Patient ORDER BY IdPatient`); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	prescriptions, err := loadPrescriptions(ctx, r.q, "")
	if err != nil {
		return nil, err
	}

	byPatient := make(map[int][]model.Prescription, len(patients))
	for _, p := range prescriptions {
		byPatient[p.PatientID] = append(byPatient[p.PatientID], p)
	}

	result = make([]model.PatientWithPrescriptions, len(patients))
	for i, p := range patients {
		list := byPatient[p.ID]
		if list == nil {
			list = []model.Prescription{}
		}
		result[i] = model.PatientWithPrescriptions{Patient: p, Prescriptions: list}
	}
	return result, nil
}
