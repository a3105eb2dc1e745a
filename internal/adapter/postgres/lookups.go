package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"adcenter/internal/core/domain"
)

// ListCategories returns the shared content categories.
func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

// ListAdTypes returns the advertisement format types.
func (r *Repository) ListAdTypes(ctx context.Context) ([]domain.AdType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM ad_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdType, error) {
		var t domain.AdType
		err := row.Scan(&t.ID, &t.Name)
		return t, err
	})
}
