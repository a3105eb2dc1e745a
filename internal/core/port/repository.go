package port

import (
	"context"
	"time"

	"adcenter/internal/core/domain"
)

// ListQuery describes an optional free-text search plus page-number
// pagination for collection listings. Search is whitespace-tokenised by the
// repository; blank queries return the full tenant-scoped collection.
type ListQuery struct {
	Search   string
	Page     int
	PageSize int
}

// Offset returns the row offset for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// DomainRepository resolves tenant identities. It is an outbound port; the
// authentication layer upstream guarantees the key material it receives.
type DomainRepository interface {
	// DomainByAPIKey resolves the dashboard caller's tenant.
	DomainByAPIKey(ctx context.Context, apiKey string) (*domain.Domain, error)
	// DomainByExternalID resolves the public delivery identifier.
	DomainByExternalID(ctx context.Context, domainID string) (*domain.Domain, error)
}

// CampaignRepository persists campaigns. Every method is scoped by the
// owning domain's internal id; identifiers outside that scope behave as
// absent and yield ErrNotFound.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context, domainID int64, q ListQuery) ([]domain.Campaign, int64, error)
	RunningCampaigns(ctx context.Context, domainID int64, now time.Time) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, domainID, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, domainID int64, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, domainID, id int64) error
}

// AdGroupRepository persists ad groups, scoped through their campaign's
// domain. List search spans the group's category name and campaign name.
type AdGroupRepository interface {
	ListAdGroups(ctx context.Context, domainID int64, q ListQuery) ([]domain.AdGroup, int64, error)
	AdGroupsForDomain(ctx context.Context, domainID int64) ([]domain.AdGroup, error)
	GetAdGroup(ctx context.Context, domainID, id int64) (*domain.AdGroup, error)
	CreateAdGroup(ctx context.Context, g *domain.AdGroup) error
	UpdateAdGroup(ctx context.Context, domainID int64, g *domain.AdGroup) error
	DeleteAdGroup(ctx context.Context, domainID, id int64) error
}

// AdvertisementRepository persists advertisements, scoped through the
// group→campaign→domain chain. Counter increments are single-row SQL
// updates so concurrent calls cannot lose each other's writes.
type AdvertisementRepository interface {
	ListAdvertisements(ctx context.Context, domainID int64, q ListQuery) ([]domain.Advertisement, int64, error)
	GetAdvertisement(ctx context.Context, domainID, id int64) (*domain.Advertisement, error)
	CreateAdvertisement(ctx context.Context, a *domain.Advertisement) error
	UpdateAdvertisement(ctx context.Context, domainID int64, a *domain.Advertisement) error
	DeleteAdvertisement(ctx context.Context, domainID, id int64) error
	SetAdvertisementMedia(ctx context.Context, id int64, media string) error

	// EligibleAdvertisements returns the active ads of the domain whose
	// campaign is running at now. Used by the delivery selector.
	EligibleAdvertisements(ctx context.Context, domainID int64, now time.Time) ([]domain.Advertisement, error)
	// IncrementDelivered bumps the impression counter by one.
	IncrementDelivered(ctx context.Context, id int64) error
	// RegisterClick bumps click_count by one; ErrNotFound when id is unknown.
	RegisterClick(ctx context.Context, id int64) error
}

// LookupRepository serves the tenant-independent lookup tables.
type LookupRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListAdTypes(ctx context.Context) ([]domain.AdType, error)
}
