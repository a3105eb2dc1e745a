package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

const campaignColumns = `id, domain_id, name, is_active, start_date, end_date, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.DomainID, &c.Name, &c.IsActive, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCampaigns returns one page of the domain's campaigns, newest first,
// optionally narrowed by a name search, together with the total count for
// the same filter.
func (r *Repository) ListCampaigns(ctx context.Context, domainID int64, q port.ListQuery) ([]domain.Campaign, int64, error) {
	where := `WHERE domain_id = $1`
	args := []any{domainID}
	if cond, condArgs := searchFilter(q.Search, len(args)+1, "name"); cond != "" {
		where += ` AND ` + cond
		args = append(args, condArgs...)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		campaignColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// RunningCampaigns returns the domain's campaigns that are active and whose
// inclusive start/end window contains now.
func (r *Repository) RunningCampaigns(ctx context.Context, domainID int64, now time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns
		 WHERE domain_id = $1 AND is_active AND $2 BETWEEN start_date AND end_date
		 ORDER BY id DESC`, domainID, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign fetches a single campaign inside the domain's visible set.
func (r *Repository) GetCampaign(ctx context.Context, domainID, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE domain_id = $1 AND id = $2`, domainID, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// CreateCampaign inserts the campaign and fills in its generated id and
// timestamps.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (domain_id, name, is_active, start_date, end_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 RETURNING id, created_at, updated_at`,
		c.DomainID, c.Name, c.IsActive, c.StartDate, c.EndDate).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateCampaign replaces the campaign's mutable fields. The update is
// tenant-scoped: an id outside the domain yields ErrNotFound, never a
// cross-tenant write.
func (r *Repository) UpdateCampaign(ctx context.Context, domainID int64, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE campaigns SET name = $1, is_active = $2, start_date = $3, end_date = $4, updated_at = now()
		 WHERE domain_id = $5 AND id = $6
		 RETURNING created_at, updated_at`,
		c.Name, c.IsActive, c.StartDate, c.EndDate, domainID, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	return notFound(err)
}

// DeleteCampaign hard-deletes the campaign within the domain's scope.
func (r *Repository) DeleteCampaign(ctx context.Context, domainID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE domain_id = $1 AND id = $2`, domainID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
