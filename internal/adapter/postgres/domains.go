package postgres

import (
	"context"

	"adcenter/internal/core/domain"
)

const domainColumns = `id, domain_id, name, api_key, created_at, updated_at`

func (r *Repository) scanDomain(ctx context.Context, query string, arg any) (*domain.Domain, error) {
	var d domain.Domain
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&d.ID, &d.DomainID, &d.Name, &d.APIKey, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// DomainByAPIKey resolves the tenant presented by a dashboard request.
func (r *Repository) DomainByAPIKey(ctx context.Context, apiKey string) (*domain.Domain, error) {
	return r.scanDomain(ctx, `SELECT `+domainColumns+` FROM domains WHERE api_key = $1`, apiKey)
}

// DomainByExternalID resolves the public delivery identifier.
func (r *Repository) DomainByExternalID(ctx context.Context, domainID string) (*domain.Domain, error) {
	return r.scanDomain(ctx, `SELECT `+domainColumns+` FROM domains WHERE domain_id = $1`, domainID)
}
