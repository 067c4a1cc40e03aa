package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/jwalitptl/records-api/internal/repository"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
)

// sqlState extracts the SQLSTATE from either driver's error type.
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translate maps driver errors onto repository sentinels, keeping the cause.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch sqlState(err) {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	case codeSerializationFailure:
		return fmt.Errorf("%w: %v", repository.ErrSerialization, err)
	}
	return err
}
