package client

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
	"github.com/jwalitptl/records-api/internal/service/trip"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
	"github.com/jwalitptl/records-api/pkg/messaging"
)

const (
	msgAlreadyRegistered = "Client is already registered for this trip"
	msgTripFull          = "Trip has maximum number of participants"
	msgNotRegistered     = "Client is not registered for this trip"
	msgConcurrentUpdate  = "Trip registration conflicted with a concurrent request"
)

type ClientService interface {
	CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error)
	ListClientTrips(ctx context.Context, clientID int) ([]model.ClientTrip, error)
	RegisterForTrip(ctx context.Context, clientID, tripID int) (*model.Registration, error)
	UnregisterFromTrip(ctx context.Context, clientID, tripID int) error
}

type Service struct {
	repos          repository.Repositories
	tx             repository.Transactor
	publisher      messaging.Publisher
	now            func() time.Time
	strictCapacity bool
}

type Option func(*Service)

// WithClock replaces time.Now as the source of registration dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithStrictCapacity runs registration in one serializable transaction.
func WithStrictCapacity(strict bool) Option {
	return func(s *Service) { s.strictCapacity = strict }
}

func NewService(repos repository.Repositories, tx repository.Transactor, publisher messaging.Publisher, opts ...Option) *Service {
	s := &Service{
		repos:     repos,
		tx:        tx,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	client := &model.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Telephone: optional(req.Telephone),
		Pesel:     optional(req.Pesel),
	}
	if err := s.repos.Clients.Create(ctx, client); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	messaging.Notify(ctx, s.publisher, messaging.EventClientCreated, client)
	return client, nil
}

// ListClientTrips returns the client's registered trips, each with countries.
func (s *Service) ListClientTrips(ctx context.Context, clientID int) ([]model.ClientTrip, error) {
	if err := s.requireClient(ctx, s.repos, clientID); err != nil {
		return nil, err
	}

	trips, err := s.repos.Clients.ListTrips(ctx, clientID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	for i := range trips {
		if trips[i].Countries, err = trip.AttachCountries(ctx, s.repos.Trips, trips[i].ID); err != nil {
			return nil, err
		}
	}

	if trips == nil {
		trips = []model.ClientTrip{}
	}
	return trips, nil
}

// RegisterForTrip checks client, trip, duplicate and capacity in that order,
// then records the registration dated today.
func (s *Service) RegisterForTrip(ctx context.Context, clientID, tripID int) (*model.Registration, error) {
	var reg *model.Registration
	register := func(repos repository.Repositories) error {
		var err error
		reg, err = s.register(ctx, repos, clientID, tripID)
		return err
	}

	var err error
	if s.strictCapacity {
		err = s.tx.WithinTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, register)
	} else {
		err = register(s.repos)
	}
	if err != nil {
		return nil, registrationError(err)
	}

	messaging.Notify(ctx, s.publisher, messaging.EventRegistrationCreated, reg)
	return reg, nil
}

func (s *Service) register(ctx context.Context, repos repository.Repositories, clientID, tripID int) (*model.Registration, error) {
	if err := s.requireClient(ctx, repos, clientID); err != nil {
		return nil, err
	}

	maxPeople, err := repos.Trips.MaxPeople(ctx, tripID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFoundf("Trip with ID %d not found", tripID)
	}
	if err != nil {
		return nil, err
	}

	registered, err := repos.Registrations.Exists(ctx, clientID, tripID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, apperrors.NewConflict(msgAlreadyRegistered, nil)
	}

	count, err := repos.Registrations.CountForTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if count >= maxPeople {
		return nil, apperrors.NewCapacityExceeded(msgTripFull)
	}

	reg := &model.Registration{
		ClientID:     clientID,
		TripID:       tripID,
		RegisteredAt: model.CompactDate(s.now()),
	}
	if err := repos.Registrations.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// UnregisterFromTrip removes an existing registration.
func (s *Service) UnregisterFromTrip(ctx context.Context, clientID, tripID int) error {
	registered, err := s.repos.Registrations.Exists(ctx, clientID, tripID)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if !registered {
		return apperrors.NewNotFound(msgNotRegistered, nil)
	}

	err = s.repos.Registrations.Delete(ctx, clientID, tripID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(msgNotRegistered, err)
	}
	if err != nil {
		return apperrors.NewInternal(err)
	}

	messaging.Notify(ctx, s.publisher, messaging.EventRegistrationDeleted, model.Registration{ClientID: clientID, TripID: tripID})
	return nil
}

func (s *Service) requireClient(ctx context.Context, repos repository.Repositories, clientID int) error {
	exists, err := repos.Clients.Exists(ctx, clientID)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if !exists {
		return apperrors.NotFoundf("Client with ID %d not found", clientID)
	}
	return nil
}

func registrationError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict(msgAlreadyRegistered, err)
	case errors.Is(err, repository.ErrSerialization):
		return apperrors.NewConflict(msgConcurrentUpdate, err)
	}
	return apperrors.Wrap(err)
}
