package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
)

type clientRepository struct {
	BaseRepository
}

func NewClientRepository(q sqlx.ExtContext) repository.ClientRepository {
	return &clientRepository{NewBaseRepository(q, nil)}
}

// Create inserts the client and stores the generated id on it.
func (r *clientRepository) Create(ctx context.Context, client *model.Client) (err error) {
	defer r.track("create_client")(&err)

	query := `
		INSERT INTO Client (FirstName, LastName, Email, Telephone, Pesel)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING IdClient`
	err = sqlx.GetContext(ctx, r.q, &client.ID, query,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Telephone,
		client.Pesel,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", translate(err))
	}
	return nil
}

func (r *clientRepository) Exists(ctx context.Context, id int) (exists bool, err error) {
	defer r.track("client_exists")(&err)

	err = sqlx.GetContext(ctx, r.q, &exists, `SELECT EXISTS(SELECT 1 FROM Client WHERE IdClient = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check client %d: %w", id, err)
	}
	return exists, nil
}

func (r *clientRepository) ListTrips(ctx context.Context, clientID int) (trips []model.ClientTrip, err error) {
	defer r.track("list_client_trips")(&err)

	query := `SELECT` + tripColumns + `,
			ct.RegisteredAt AS registered_at,
			ct.PaymentDate AS payment_date
		FROM Client_Trip ct
		JOIN Trip t ON t.IdTrip = ct.IdTrip
		WHERE ct.IdClient = $1
		ORDER BY t.IdTrip`
	if err = sqlx.SelectContext(ctx, r.q, &trips, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list trips for client %d: %w", clientID, err)
	}
	return trips, nil
}
