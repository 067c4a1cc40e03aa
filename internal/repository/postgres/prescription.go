package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
)

type prescriptionRepository struct {
	BaseRepository
}

func NewPrescriptionRepository(q sqlx.ExtContext) repository.PrescriptionRepository {
	return &prescriptionRepository{NewBaseRepository(q, nil)}
}

// Create inserts the prescription row followed by one row per line item. It
// is only atomic when q is a transaction.
func (r *prescriptionRepository) Create(ctx context.Context, p *model.NewPrescription) (id int, err error) {
	defer r.track("create_prescription")(&err)

	query := `
		INSERT INTO Prescription (Date, DueDate, IdPatient, IdDoctor)
		VALUES ($1, $2, $3, $4)
		RETURNING IdPrescription`
	if err = sqlx.GetContext(ctx, r.q, &id, query, p.Date, p.DueDate, p.PatientID, p.DoctorID); err != nil {
		return 0, fmt.Errorf("failed to create prescription: %w", err)
	}

	itemQuery := `
		INSERT INTO PrescriptionMedicament (IdMedicament, IdPrescription, Dose, Details)
		VALUES ($1, $2, $3, $4)`
	for _, item := range p.Items {
		if _, err = r.q.ExecContext(ctx, itemQuery, item.MedicamentID, id, item.Dose, item.Details); err != nil {
			return 0, fmt.Errorf("failed to add medicament %d to prescription: %w", item.MedicamentID, err)
		}
	}
	return id, nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id int) (p *model.Prescription, err error) {
	defer r.track("get_prescription")(&err)

	prescriptions, err := loadPrescriptions(ctx, r.q, `WHERE p.IdPrescription = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(prescriptions) == 0 {
		return nil, repository.ErrNotFound
	}
	return &prescriptions[0], nil
}

type prescriptionRow struct {
	ID              int        `db:"id_prescription"`
	Date            model.Date `db:"date"`
	DueDate         model.Date `db:"due_date"`
	PatientID       int        `db:"id_patient"`
	DoctorID        int        `db:"id_doctor"`
	DoctorFirstName string     `db:"doctor_first_name"`
	DoctorLastName  string     `db:"doctor_last_name"`
	DoctorEmail     string     `db:"doctor_email"`
}

// loadPrescriptions reads prescriptions matching filter together with their
// doctor and line items, in two queries. filter uses ? placeholders.
func loadPrescriptions(ctx context.Context, q sqlx.ExtContext, filter string, args ...interface{}) ([]model.Prescription, error) {
	query := q.Rebind(`
		SELECT
			p.IdPrescription AS id_prescription,
			p.Date AS date,
			p.DueDate AS due_date,
			p.IdPatient AS id_patient,
			d.IdDoctor AS id_doctor,
			d.FirstName AS doctor_first_name,
			d.LastName AS doctor_last_name,
			d.Email AS doctor_email
		FROM Prescription p
		JOIN Doctor d ON d.IdDoctor = p.IdDoctor
		` + filter + `
		ORDER BY p.IdPrescription`)

	var rows []prescriptionRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load prescriptions: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	itemQuery, itemArgs, err := sqlx.In(`
		SELECT
			pm.IdPrescription AS id_prescription,
			m.IdMedicament AS id_medicament,
			m.Name AS name,
			m.Description AS description,
			m.Type AS type,
			pm.Dose AS dose,
			pm.Details AS details
		FROM PrescriptionMedicament pm
		JOIN Medicament m ON m.IdMedicament = pm.IdMedicament
		WHERE pm.IdPrescription IN (?)
		ORDER BY pm.IdPrescription, m.IdMedicament`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build line item query: %w", err)
	}

	var items []model.PrescribedMedicament
	if err := sqlx.SelectContext(ctx, q, &items, q.Rebind(itemQuery), itemArgs...); err != nil {
		return nil, fmt.Errorf("failed to load prescription medicaments: %w", err)
	}

	byPrescription := make(map[int][]model.PrescribedMedicament, len(rows))
	for _, item := range items {
		byPrescription[item.PrescriptionID] = append(byPrescription[item.PrescriptionID], item)
	}

	prescriptions := make([]model.Prescription, len(rows))
	for i, row := range rows {
		medicaments := byPrescription[row.ID]
		if medicaments == nil {
			medicaments = []model.PrescribedMedicament{}
		}
		prescriptions[i] = model.Prescription{
			ID:        row.ID,
			Date:      row.Date,
			DueDate:   row.DueDate,
			PatientID: row.PatientID,
			Doctor: model.Doctor{
				ID:        row.DoctorID,
				FirstName: row.DoctorFirstName,
				LastName:  row.DoctorLastName,
				Email:     row.DoctorEmail,
			},
			Medicaments: medicaments,
		}
	}
	return prescriptions, nil
}
