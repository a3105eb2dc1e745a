package domain

import "time"

// Campaign represents an advertising campaign owned by a Domain. The
// start/end dates form an inclusive activity window; a campaign is
// considered running when IsActive is set and now falls inside the window.
type Campaign struct {
	ID        int64
	DomainID  int64
	Name      string
	IsActive  bool
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Running reports whether the campaign is active at the given instant.
func (c Campaign) Running(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}
