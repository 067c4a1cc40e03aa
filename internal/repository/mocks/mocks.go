// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
)

type TripRepository struct{ mock.Mock }

func (m *TripRepository) List(ctx context.Context) ([]model.Trip, error) {
	args := m.Called(ctx)
	trips, _ := args.Get(0).([]model.Trip)
	return trips, args.Error(1)
}

func (m *TripRepository) ListCountries(ctx context.Context, tripID int) ([]model.Country, error) {
	args := m.Called(ctx, tripID)
	countries, _ := args.Get(0).([]model.Country)
	return countries, args.Error(1)
}

func (m *TripRepository) MaxPeople(ctx context.Context, tripID int) (int, error) {
	args := m.Called(ctx, tripID)
	return args.Int(0), args.Error(1)
}

type ClientRepository struct{ mock.Mock }

func (m *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *ClientRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ClientRepository) ListTrips(ctx context.Context, clientID int) ([]model.ClientTrip, error) {
	args := m.Called(ctx, clientID)
	trips, _ := args.Get(0).([]model.ClientTrip)
	return trips, args.Error(1)
}

type RegistrationRepository struct{ mock.Mock }

func (m *RegistrationRepository) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	args := m.Called(ctx, clientID, tripID)
	return args.Bool(0), args.Error(1)
}

func (m *RegistrationRepository) CountForTrip(ctx context.Context, tripID int) (int, error) {
	args := m.Called(ctx, tripID)
	return args.Int(0), args.Error(1)
}

func (m *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *RegistrationRepository) Delete(ctx context.Context, clientID, tripID int) error {
	return m.Called(ctx, clientID, tripID).Error(0)
}

type PatientRepository struct{ mock.Mock }

func (m *PatientRepository) Get(ctx context.Context, id int) (*model.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*model.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *PatientRepository) ListWithPrescriptions(ctx context.Context) ([]model.PatientWithPrescriptions, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]model.PatientWithPrescriptions)
	return patients, args.Error(1)
}

type CatalogRepository struct{ mock.Mock }

func (m *CatalogRepository) DoctorExists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogRepository) ExistingMedicamentIDs(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]int)
	return found, args.Error(1)
}

func (m *CatalogRepository) SeedDefaults(ctx context.Context) (repository.SeedResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(repository.SeedResult)
	return res, args.Error(1)
}

type PrescriptionRepository struct{ mock.Mock }

func (m *PrescriptionRepository) Create(ctx context.Context, p *model.NewPrescription) (int, error) {
	args := m.Called(ctx, p)
	return args.Int(0), args.Error(1)
}

func (m *PrescriptionRepository) Get(ctx context.Context, id int) (*model.Prescription, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Prescription)
	return p, args.Error(1)
}

// Repositories bundles one mock per repository.
type Repositories struct {
	Trips         *TripRepository
	Clients       *ClientRepository
	Registrations *RegistrationRepository
	Patients      *PatientRepository
	Catalog       *CatalogRepository
	Prescriptions *PrescriptionRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Trips:         &TripRepository{},
		Clients:       &ClientRepository{},
		Registrations: &RegistrationRepository{},
		Patients:      &PatientRepository{},
		Catalog:       &CatalogRepository{},
		Prescriptions: &PrescriptionRepository{},
	}
}

func (r *Repositories) Bind() repository.Repositories {
	return repository.Repositories{
		Trips:         r.Trips,
		Clients:       r.Clients,
		Registrations: r.Registrations,
		Patients:      r.Patients,
		Catalog:       r.Catalog,
		Prescriptions: r.Prescriptions,
	}
}

func (r *Repositories) AssertExpectations(t mock.TestingT) {
	r.Trips.AssertExpectations(t)
	r.Clients.AssertExpectations(t)
	r.Registrations.AssertExpectations(t)
	r.Patients.AssertExpectations(t)
	r.Catalog.AssertExpectations(t)
	r.Prescriptions.AssertExpectations(t)
}

// Transactor runs fn against the same mocks, recording whether it committed.
type Transactor struct {
	Repos     *Repositories
	Opts      *sql.TxOptions
	Calls     int
	Committed int
	// Err, when set, is returned in place of a successful commit.
	Err error
}

func (t *Transactor) WithinTx(_ context.Context, opts *sql.TxOptions, fn func(repository.Repositories) error) error {
	t.Calls++
	t.Opts = opts
	if err := fn(t.Repos.Bind()); err != nil {
		return err
	}
	if t.Err != nil {
		return t.Err
	}
	t.Committed++
	return nil
}

// Publisher records published events.
type Publisher struct {
	Events []string
	Err    error
}

func (p *Publisher) Publish(_ context.Context, eventType string, _ interface{}) error {
	p.Events = append(p.Events, eventType)
	return p.Err
}
