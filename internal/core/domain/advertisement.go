package domain

import "time"

// Advertisement is a single creative unit inside an AdGroup. Delivered and
// ClickCount only ever grow; they are mutated exclusively by the delivery
// selector and the click redirector through single-row SQL increments.
type Advertisement struct {
	ID         int64
	AdGroupID  int64
	AdTypeID   int64
	AdText     string
	AdURL      string
	Media      *string
	IsActive   bool
	Delivered  int64
	ClickCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
