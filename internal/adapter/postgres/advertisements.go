package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

const adColumns = `a.id, a.ad_group_id, a.ad_type_id, a.ad_text, a.ad_url, a.media,
	a.is_active, a.delivered, a.click_count, a.created_at, a.updated_at`

// adScopeJoin walks the group→campaign chain so every query can filter by
// the owning domain.
const adScopeJoin = `
	FROM advertisements a
	JOIN ad_groups g ON a.ad_group_id = g.id
	JOIN campaigns c ON g.campaign_id = c.id`

func scanAdvertisement(row pgx.CollectableRow) (domain.Advertisement, error) {
	var a domain.Advertisement
	err := row.Scan(&a.ID, &a.AdGroupID, &a.AdTypeID, &a.AdText, &a.AdURL, &a.Media,
		&a.IsActive, &a.Delivered, &a.ClickCount, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ListAdvertisements returns one page of the domain's advertisements,
// newest first, optionally narrowed by an ad-text search.
func (r *Repository) ListAdvertisements(ctx context.Context, domainID int64, q port.ListQuery) ([]domain.Advertisement, int64, error) {
	where := `WHERE c.domain_id = $1`
	args := []any{domainID}
	if cond, condArgs := searchFilter(q.Search, len(args)+1, "a.ad_text"); cond != "" {
		where += ` AND ` + cond
		args = append(args, condArgs...)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) `+adScopeJoin+` `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY a.id DESC LIMIT $%d OFFSET $%d`,
		adColumns, adScopeJoin, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, scanAdvertisement)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetAdvertisement fetches a single advertisement inside the domain's
// visible set.
func (r *Repository) GetAdvertisement(ctx context.Context, domainID, id int64) (*domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+adColumns+` `+adScopeJoin+` WHERE c.domain_id = $1 AND a.id = $2`, domainID, id)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanAdvertisement)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

// CreateAdvertisement inserts the advertisement with zeroed counters and
// fills in its generated id and timestamps.
func (r *Repository) CreateAdvertisement(ctx context.Context, a *domain.Advertisement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO advertisements (ad_group_id, ad_type_id, ad_text, ad_url, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 RETURNING id, delivered, click_count, created_at, updated_at`,
		a.AdGroupID, a.AdTypeID, a.AdText, a.AdURL, a.IsActive).
		Scan(&a.ID, &a.Delivered, &a.ClickCount, &a.CreatedAt, &a.UpdatedAt)
}

// UpdateAdvertisement replaces the advertisement's mutable fields, scoped
// through the group→campaign→domain chain. Counters are never touched here.
func (r *Repository) UpdateAdvertisement(ctx context.Context, domainID int64, a *domain.Advertisement) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE advertisements SET ad_group_id = $1, ad_type_id = $2, ad_text = $3, ad_url = $4,
			is_active = $5, updated_at = now()
		 FROM ad_groups g, campaigns c
		 WHERE advertisements.id = $6 AND advertisements.ad_group_id = g.id
			AND g.campaign_id = c.id AND c.domain_id = $7
		 RETURNING advertisements.media, advertisements.delivered, advertisements.click_count,
			advertisements.created_at, advertisements.updated_at`,
		a.AdGroupID, a.AdTypeID, a.AdText, a.AdURL, a.IsActive, a.ID, domainID).
		Scan(&a.Media, &a.Delivered, &a.ClickCount, &a.CreatedAt, &a.UpdatedAt)
	return notFound(err)
}

// DeleteAdvertisement hard-deletes the advertisement within the domain's
// scope.
func (r *Repository) DeleteAdvertisement(ctx context.Context, domainID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM advertisements a USING ad_groups g, campaigns c
		 WHERE a.id = $1 AND a.ad_group_id = g.id AND g.campaign_id = c.id AND c.domain_id = $2`,
		id, domainID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SetAdvertisementMedia attaches the stored media reference as a second
// persistence step after create/update.
func (r *Repository) SetAdvertisementMedia(ctx context.Context, id int64, media string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE advertisements SET media = $1, updated_at = now() WHERE id = $2`, media, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// EligibleAdvertisements returns the domain's active advertisements whose
// parent campaign is itself active and inside its start/end window at now.
func (r *Repository) EligibleAdvertisements(ctx context.Context, domainID int64, now time.Time) ([]domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+adColumns+` `+adScopeJoin+`
		 WHERE c.domain_id = $1 AND a.is_active AND c.is_active
			AND $2 BETWEEN c.start_date AND c.end_date`, domainID, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAdvertisement)
}

// IncrementDelivered bumps the impression counter. The single-statement
// increment leaves serialisation of concurrent calls to the database; no
// read-modify-write happens in application code.
func (r *Repository) IncrementDelivered(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE advertisements SET delivered = delivered + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// RegisterClick bumps the click counter the same way.
func (r *Repository) RegisterClick(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE advertisements SET click_count = click_count + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
