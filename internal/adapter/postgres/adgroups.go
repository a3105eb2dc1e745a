package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// adGroupSelect joins the parent campaign and category so list responses
// and search can use their names without extra round-trips.
const adGroupSelect = `
	SELECT g.id, g.campaign_id, g.category_id, g.name, g.created_at, g.updated_at,
	       c.name, cat.name
	FROM ad_groups g
	JOIN campaigns c ON g.campaign_id = c.id
	JOIN categories cat ON g.category_id = cat.id`

func scanAdGroup(row pgx.CollectableRow) (domain.AdGroup, error) {
	var g domain.AdGroup
	err := row.Scan(&g.ID, &g.CampaignID, &g.CategoryID, &g.Name, &g.CreatedAt, &g.UpdatedAt,
		&g.CampaignName, &g.CategoryName)
	return g, err
}

// ListAdGroups returns one page of the domain's ad groups, newest first.
// The search term matches the category name or the campaign name; the two
// field groups are OR-combined and deduplicated.
func (r *Repository) ListAdGroups(ctx context.Context, domainID int64, q port.ListQuery) ([]domain.AdGroup, int64, error) {
	where := `WHERE c.domain_id = $1`
	args := []any{domainID}
	if cond, condArgs := searchFilter(q.Search, len(args)+1, "cat.name", "c.name"); cond != "" {
		where += ` AND ` + cond
		args = append(args, condArgs...)
	}

	var total int64
	countQuery := `SELECT count(DISTINCT g.id) FROM ad_groups g
		JOIN campaigns c ON g.campaign_id = c.id
		JOIN categories cat ON g.category_id = cat.id ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`%s %s ORDER BY g.id DESC LIMIT $%d OFFSET $%d`,
		adGroupSelect, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, scanAdGroup)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// AdGroupsForDomain returns every ad group under the domain's campaigns.
// Used by the group/type listing view.
func (r *Repository) AdGroupsForDomain(ctx context.Context, domainID int64) ([]domain.AdGroup, error) {
	rows, err := r.pool.Query(ctx, adGroupSelect+` WHERE c.domain_id = $1 ORDER BY g.id DESC`, domainID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAdGroup)
}

// GetAdGroup fetches a single ad group inside the domain's visible set.
func (r *Repository) GetAdGroup(ctx context.Context, domainID, id int64) (*domain.AdGroup, error) {
	rows, err := r.pool.Query(ctx, adGroupSelect+` WHERE c.domain_id = $1 AND g.id = $2`, domainID, id)
	if err != nil {
		return nil, err
	}
	g, err := pgx.CollectOneRow(rows, scanAdGroup)
	if err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

// CreateAdGroup inserts the group and fills in its generated id and
// timestamps. Parent ownership is validated by the usecase beforehand.
func (r *Repository) CreateAdGroup(ctx context.Context, g *domain.AdGroup) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO ad_groups (campaign_id, category_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, now(), now())
		 RETURNING id, created_at, updated_at`,
		g.CampaignID, g.CategoryID, g.Name).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// UpdateAdGroup replaces the group's mutable fields, scoped through the
// campaign→domain chain.
func (r *Repository) UpdateAdGroup(ctx context.Context, domainID int64, g *domain.AdGroup) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE ad_groups g SET campaign_id = $1, category_id = $2, name = $3, updated_at = now()
		 FROM campaigns c
		 WHERE g.id = $4 AND g.campaign_id = c.id AND c.domain_id = $5
		 RETURNING g.created_at, g.updated_at`,
		g.CampaignID, g.CategoryID, g.Name, g.ID, domainID).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	return notFound(err)
}

// DeleteAdGroup hard-deletes the group within the domain's scope.
func (r *Repository) DeleteAdGroup(ctx context.Context, domainID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM ad_groups g USING campaigns c
		 WHERE g.id = $1 AND g.campaign_id = c.id AND c.domain_id = $2`, id, domainID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
