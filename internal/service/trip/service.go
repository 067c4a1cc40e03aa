package trip

import (
	"context"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

type TripService interface {
	ListTrips(ctx context.Context) ([]model.Trip, error)
}

type Service struct {
	trips repository.TripRepository
}

func NewService(trips repository.TripRepository) *Service {
	return &Service{trips: trips}
}

// ListTrips returns every trip with its countries attached.
func (s *Service) ListTrips(ctx context.Context) ([]model.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	for i := range trips {
		if trips[i].Countries, err = AttachCountries(ctx, s.trips, trips[i].ID); err != nil {
			return nil, err
		}
	}

	if trips == nil {
		trips = []model.Trip{}
	}
	return trips, nil
}

// AttachCountries loads the countries of one trip, never returning a nil slice.
func AttachCountries(ctx context.Context, trips repository.TripRepository, tripID int) ([]model.Country, error) {
	countries, err := trips.ListCountries(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if countries == nil {
		countries = []model.Country{}
	}
	return countries, nil
}
