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

type tripRepository struct {
	BaseRepository
}

func NewTripRepository(q sqlx.ExtContext) repository.TripRepository {
	return &tripRepository{NewBaseRepository(q, nil)}
}

const tripColumns = `
	t.IdTrip AS id_trip,
	t.Name AS name,
	t.Description AS description,
	t.DateFrom AS date_from,
	t.DateTo AS date_to,
	t.MaxPeople AS max_people`

func (r *tripRepository) List(ctx context.Context) (trips []model.Trip, err error) {
	defer r.track("list_trips")(&err)

	query := `SELECT` + tripColumns + ` FROM Trip t ORDER BY t.IdTrip`
	if err = sqlx.SelectContext(ctx, r.q, &trips, query); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (r *tripRepository) ListCountries(ctx context.Context, tripID int) (countries []model.Country, err error) {
	defer r.track("list_trip_countries")(&err)

	query := `
		SELECT c.IdCountry AS id_country, c.Name AS name
		FROM Country c
		JOIN Country_Trip ct ON ct.IdCountry = c.IdCountry
		WHERE ct.IdTrip = $1
		ORDER BY c.IdCountry`
	if err = sqlx.SelectContext(ctx, r.q, &countries, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list countries for trip %d: %w", tripID, err)
	}
	return countries, nil
}

func (r *tripRepository) MaxPeople(ctx context.Context, tripID int) (maxPeople int, err error) {
	defer r.track("get_trip_capacity")(&err)

	err = sqlx.GetContext(ctx, r.q, &maxPeople, `SELECT MaxPeople FROM Trip WHERE IdTrip = $1`, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get trip %d: %w", tripID, err)
	}
	return maxPeople, nil
}
