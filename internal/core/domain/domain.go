package domain

import "time"

// Domain is a tenant identity. All campaign data is scoped to exactly one
// Domain. DomainID is the external identifier handed out to publishers and
// used by the public ad-delivery endpoint; APIKey is presented by the
// dashboard on authenticated requests and resolved to this row.
type Domain struct {
	ID        int64
	DomainID  string
	Name      string
	APIKey    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
