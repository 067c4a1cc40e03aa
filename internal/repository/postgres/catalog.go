package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/records-api/internal/repository"
)

type catalogRepository struct {
	BaseRepository
}

func NewCatalogRepository(q sqlx.ExtContext) repository.CatalogRepository {
	return &catalogRepository{NewBaseRepository(q, nil)}
}

func (r *catalogRepository) DoctorExists(ctx context.Context, id int) (exists bool, err error) {
	defer r.track("doctor_exists")(&err)

	if err = sqlx.GetContext(ctx, r.q, &exists, `SELECT EXISTS(SELECT 1 FROM Doctor WHERE IdDoctor = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check doctor %d: %w", id, err)
	}
	return exists, nil
}

func (r *catalogRepository) ExistingMedicamentIDs(ctx context.Context, ids []int) (found []int, err error) {
	defer r.track("find_medicaments")(&err)

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT IdMedicament FROM Medicament WHERE IdMedicament IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build medicament query: %w", err)
	}
	if err = sqlx.SelectContext(ctx, r.q, &found, r.q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to look up medicaments: %w", err)
	}
	return found, nil
}

// Default catalog rows, inserted only into empty tables.
const (
	seedDoctorFirstName = "Antoni"
	seedDoctorLastName  = "Kwiatkowski"
	seedDoctorEmail     = "antoni.kwiatkowski@example.com"

	seedMedicamentName        = "Paracetamol"
	seedMedicamentDescription = "Pain reliever and fever reducer"
	seedMedicamentType        = "Tablet"
)

func (r *catalogRepository) SeedDefaults(ctx context.Context) (result repository.SeedResult, err error) {
	defer r.track("seed_catalog")(&err)

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO Doctor (FirstName, LastName, Email)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM Doctor)`,
		seedDoctorFirstName, seedDoctorLastName, seedDoctorEmail)
	if err != nil {
		return result, fmt.Errorf("failed to seed doctors: %w", err)
	}
	if result.DoctorsInserted, err = res.RowsAffected(); err != nil {
		return result, fmt.Errorf("failed to seed doctors: %w", err)
	}

	res, err = r.q.ExecContext(ctx, `
		INSERT INTO Medicament (Name, Description, Type)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM Medicament)`,
		seedMedicamentName, seedMedicamentDescription, seedMedicamentType)
	if err != nil {
		return result, fmt.Errorf("failed to seed medicaments: %w", err)
	}
	if result.MedicamentsInserted, err = res.RowsAffected(); err != nil {
		return result, fmt.Errorf("failed to seed medicaments: %w", err)
	}
	return result, nil
}
