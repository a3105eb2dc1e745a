package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adcenter/internal/core/port"
)

// Repository implements the outbound persistence ports using pgxpool. One
// instance backs all collections; queries are spread over the per-entity
// files in this package.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// notFound maps pgx.ErrNoRows to the port-level sentinel so callers never
// see driver errors for the absent-row case.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return err
}
