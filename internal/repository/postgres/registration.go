package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
)

type registrationRepository struct {
	BaseRepository
}

func NewRegistrationRepository(q sqlx.ExtContext) repository.RegistrationRepository {
	return &registrationRepository{NewBaseRepository(q, nil)}
}

func (r *registrationRepository) Exists(ctx context.Context, clientID, tripID int) (exists bool, err error) {
	defer r.track("registration_exists")(&err)

	query := `SELECT EXISTS(SELECT 1 FROM Client_Trip WHERE IdClient = $1 AND IdTrip = $2)`
	if err = sqlx.GetContext(ctx, r.q, &exists, query, clientID, tripID); err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return exists, nil
}

func (r *registrationRepository) CountForTrip(ctx context.Context, tripID int) (count int, err error) {
	defer r.track("count_registrations")(&err)

	if err = sqlx.GetContext(ctx, r.q, &count, `SELECT COUNT(*) FROM Client_Trip WHERE IdTrip = $1`, tripID); err != nil {
		return 0, fmt.Errorf("failed to count registrations for trip %d: %w", tripID, err)
	}
	return count, nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *model.Registration) (err error) {
	defer r.track("create_registration")(&err)

	query := `
		INSERT INTO Client_Trip (IdClient, IdTrip, RegisteredAt, PaymentDate)
		VALUES ($1, $2, $3, $4)`
	_, err = r.q.ExecContext(ctx, query, reg.ClientID, reg.TripID, reg.RegisteredAt, reg.PaymentDate)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", translate(err))
	}
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, clientID, tripID int) (err error) {
	defer r.track("delete_registration")(&err)

	res, err := r.q.ExecContext(ctx, `DELETE FROM Client_Trip WHERE IdClient = $1 AND IdTrip = $2`, clientID, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
