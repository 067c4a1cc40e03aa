package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/records-api/internal/repository"
	"github.com/jwalitptl/records-api/pkg/metrics"
)

// BaseRepository provides common functionality for all repositories. q is
// either the pool or an open transaction.
type BaseRepository struct {
	q       sqlx.ExtContext
	metrics *metrics.Metrics
}

func NewBaseRepository(q sqlx.ExtContext, m *metrics.Metrics) BaseRepository {
	return BaseRepository{q: q, metrics: m}
}

// track records latency and outcome of one query; use as
// defer r.track("op")(&err).
func (r *BaseRepository) track(operation string) func(*error) {
	start := time.Now()
	return func(err *error) {
		r.metrics.ObserveDB(operation, start, *err)
	}
}

// NewRepositories binds every repository to q.
func NewRepositories(q sqlx.ExtContext, m *metrics.Metrics) repository.Repositories {
	base := NewBaseRepository(q, m)
	return repository.Repositories{
		Trips:         &tripRepository{base},
		Clients:       &clientRepository{base},
		Registrations: &registrationRepository{base},
		Patients:      &patientRepository{base},
		Catalog:       &catalogRepository{base},
		Prescriptions: &prescriptionRepository{base},
	}
}

// Store owns the pool and hands out repositories bound to it or to a transaction.
type Store struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

func NewStore(db *sqlx.DB, m *metrics.Metrics) *Store {
	return &Store{db: db, metrics: m}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Repositories() repository.Repositories {
	return NewRepositories(s.db, s.metrics)
}

// WithTx executes a function within a transaction
func (s *Store) WithTx(ctx context.Context, opts *sql.TxOptions, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, opts)
	if err != nil {
		return translate(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return translate(err)
	}

	return translate(tx.Commit())
}

// WithinTx implements repository.Transactor.
func (s *Store) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(repository.Repositories) error) error {
	return s.WithTx(ctx, opts, func(tx *sqlx.Tx) error {
		return fn(NewRepositories(tx, s.metrics))
	})
}

// Seed inserts the default catalog rows in one transaction.
func (s *Store) Seed(ctx context.Context) (repository.SeedResult, error) {
	var result repository.SeedResult
	err := s.WithinTx(ctx, nil, func(repos repository.Repositories) error {
		var err error
		result, err = repos.Catalog.SeedDefaults(ctx)
		return err
	})
	return result, err
}
