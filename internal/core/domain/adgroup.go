package domain

import "time"

// AdGroup is a named grouping of advertisements within a Campaign,
// associated with a content Category shared across tenants.
type AdGroup struct {
	ID         int64
	CampaignID int64
	CategoryID int64
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// CampaignName and CategoryName are denormalised for list responses
	// and search; they are populated by joins and never written back.
	CampaignName string
	CategoryName string
}
