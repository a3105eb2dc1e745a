package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: one demo domain with a known API key, the shared
// lookup tables, and a small campaign→group→advertisement tree. Lookup
// inserts are idempotent; campaigns get fresh rows per run.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	const demoAPIKey = "00000000-0000-0000-0000-000000000001"

	var domainID int64
	err := db.QueryRow(ctx, `INSERT INTO domains (domain_id, name, api_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (domain_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		"demo-site", "Demo Site", demoAPIKey).Scan(&domainID)
	if err != nil {
		return err
	}

	for _, name := range []string{"news", "sports", "tech", "music"} {
		if _, err = db.Exec(ctx, `INSERT INTO categories (name) VALUES ($1) ON CONFLICT DO NOTHING`, name); err != nil {
			return err
		}
	}
	for _, name := range []string{"banner", "text", "video"} {
		if _, err = db.Exec(ctx, `INSERT INTO ad_types (name) VALUES ($1) ON CONFLICT DO NOTHING`, name); err != nil {
			return err
		}
	}

	var categoryID, adTypeID int64
	if err = db.QueryRow(ctx, `SELECT id FROM categories WHERE name = 'news'`).Scan(&categoryID); err != nil {
		return err
	}
	if err = db.QueryRow(ctx, `SELECT id FROM ad_types WHERE name = 'banner'`).Scan(&adTypeID); err != nil {
		return err
	}

	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().AddDate(0, 1, 0)
	for i := 1; i <= 3; i++ {
		var campaignID int64
		err = db.QueryRow(ctx, `INSERT INTO campaigns (domain_id, name, is_active, start_date, end_date)
			VALUES ($1, $2, true, $3, $4) RETURNING id`,
			domainID, fmt.Sprintf("Demo campaign %d", i), start, end).Scan(&campaignID)
		if err != nil {
			return err
		}

		var groupID int64
		err = db.QueryRow(ctx, `INSERT INTO ad_groups (campaign_id, category_id, name)
			VALUES ($1, $2, $3) RETURNING id`,
			campaignID, categoryID, fmt.Sprintf("Demo group %d", i)).Scan(&groupID)
		if err != nil {
			return err
		}

		for j := 1; j <= 5; j++ {
			_, err = db.Exec(ctx, `INSERT INTO advertisements (ad_group_id, ad_type_id, ad_text, ad_url, is_active)
				VALUES ($1, $2, $3, $4, true)`,
				groupID, adTypeID,
				fmt.Sprintf("Demo ad %d-%d", i, j),
				fmt.Sprintf("https://example.com/landing/%s", uuid.NewString()))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
