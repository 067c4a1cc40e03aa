package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jwalitptl/records-api/internal/model"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrSerialization is returned when a serializable transaction lost a race.
	ErrSerialization = errors.New("concurrent update, transaction aborted")
)

// All repository interfaces in one file
type (
	TripRepository interface {
		List(ctx context.Context) ([]model.Trip, error)
		ListCountries(ctx context.Context, tripID int) ([]model.Country, error)
		// MaxPeople returns ErrNotFound for an unknown trip.
		MaxPeople(ctx context.Context, tripID int) (int, error)
	}

	ClientRepository interface {
		Create(ctx context.Context, client *model.Client) error
		Exists(ctx context.Context, id int) (bool, error)
		ListTrips(ctx context.Context, clientID int) ([]model.ClientTrip, error)
	}

	RegistrationRepository interface {
		Exists(ctx context.Context, clientID, tripID int) (bool, error)
		CountForTrip(ctx context.Context, tripID int) (int, error)
		// Create returns ErrDuplicate when the pair is already registered.
		Create(ctx context.Context, registration *model.Registration) error
		// Delete returns ErrNotFound when nothing was deleted.
		Delete(ctx context.Context, clientID, tripID int) error
	}

	PatientRepository interface {
		// Get returns ErrNotFound for an unknown patient.
		Get(ctx context.Context, id int) (*model.Patient, error)
		Create(ctx context.Context, patient *model.Patient) error
		ListWithPrescriptions(ctx context.Context) ([]model.PatientWithPrescriptions, error)
	}

	CatalogRepository interface {
		DoctorExists(ctx context.Context, id int) (bool, error)
		// ExistingMedicamentIDs returns the subset of ids present in the catalog.
		ExistingMedicamentIDs(ctx context.Context, ids []int) ([]int, error)
		SeedDefaults(ctx context.Context) (SeedResult, error)
	}

	PrescriptionRepository interface {
		// Create writes the prescription and all its line items and returns its id.
		Create(ctx context.Context, prescription *model.NewPrescription) (int, error)
		// Get returns ErrNotFound for an unknown prescription.
		Get(ctx context.Context, id int) (*model.Prescription, error)
	}

	// Transactor runs fn with repositories bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transactor interface {
		WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(Repositories) error) error
	}
)

// Repositories groups every repository bound to the same connection or transaction.
type Repositories struct {
	Trips         TripRepository
	Clients       ClientRepository
	Registrations RegistrationRepository
	Patients      PatientRepository
	Catalog       CatalogRepository
	Prescriptions PrescriptionRepository
}

type SeedResult struct {
	DoctorsInserted     int64
	MedicamentsInserted int64
}
