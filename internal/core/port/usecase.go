package port

import (
	"context"
	"io"
	"time"

	"adcenter/internal/core/domain"
)

// CampaignInput is the full-replace payload for campaign create/update.
// The owning domain is never part of the payload; it is injected from the
// resolved tenant.
type CampaignInput struct {
	Name      string
	IsActive  bool
	StartDate time.Time
	EndDate   time.Time
}

// AdGroupInput is the full-replace payload for ad group create/update.
type AdGroupInput struct {
	CampaignID int64
	CategoryID int64
	Name       string
}

// AdvertisementInput is the full-replace payload for advertisement
// create/update. Media travels separately as a MediaUpload.
type AdvertisementInput struct {
	AdGroupID int64
	AdTypeID  int64
	AdText    string
	AdURL     string
	IsActive  bool
}

// MediaUpload is an optional attachment accompanying advertisement
// create/update. Content is consumed once by the media store.
type MediaUpload struct {
	Name    string
	Content io.Reader
}

// DeliveryUseCase is the public (unauthenticated) ad-serving surface.
type DeliveryUseCase interface {
	// SelectAd picks one eligible advertisement for the external domain
	// identifier uniformly at random and increments its delivered counter.
	// It returns (nil, nil) when the domain has no eligible ads — a valid
	// "no ad available" outcome — and ErrNotFound when the identifier does
	// not resolve.
	SelectAd(ctx context.Context, domainID string) (*domain.Advertisement, error)

	// RegisterClick increments the advertisement's click counter and
	// returns the redirect target. The target URL is taken from the caller
	// as-is. ErrNotFound when the advertisement does not exist.
	RegisterClick(ctx context.Context, adID int64, targetURL string) (string, error)
}

// CampaignUseCase is the tenant-scoped campaign collection.
type CampaignUseCase interface {
	List(ctx context.Context, tenant domain.Domain, q ListQuery) ([]domain.Campaign, int64, error)
	Get(ctx context.Context, tenant domain.Domain, id int64) (*domain.Campaign, error)
	Create(ctx context.Context, tenant domain.Domain, in CampaignInput) (*domain.Campaign, error)
	Update(ctx context.Context, tenant domain.Domain, id int64, in CampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, tenant domain.Domain, id int64) error
}

// AdGroupUseCase is the tenant-scoped ad group collection.
type AdGroupUseCase interface {
	List(ctx context.Context, tenant domain.Domain, q ListQuery) ([]domain.AdGroup, int64, error)
	Get(ctx context.Context, tenant domain.Domain, id int64) (*domain.AdGroup, error)
	Create(ctx context.Context, tenant domain.Domain, in AdGroupInput) (*domain.AdGroup, error)
	Update(ctx context.Context, tenant domain.Domain, id int64, in AdGroupInput) (*domain.AdGroup, error)
	Delete(ctx context.Context, tenant domain.Domain, id int64) error
}

// AdvertisementUseCase is the tenant-scoped advertisement collection.
type AdvertisementUseCase interface {
	List(ctx context.Context, tenant domain.Domain, q ListQuery) ([]domain.Advertisement, int64, error)
	Get(ctx context.Context, tenant domain.Domain, id int64) (*domain.Advertisement, error)
	Create(ctx context.Context, tenant domain.Domain, in AdvertisementInput, media *MediaUpload) (*domain.Advertisement, error)
	Update(ctx context.Context, tenant domain.Domain, id int64, in AdvertisementInput, media *MediaUpload) (*domain.Advertisement, error)
	Delete(ctx context.Context, tenant domain.Domain, id int64) error
}

// CampaignCategories is the payload of the campaign/category listing view.
type CampaignCategories struct {
	Categories []domain.Category
	Campaigns  []domain.Campaign
}

// GroupTypes is the payload of the group/type listing view.
type GroupTypes struct {
	Groups []domain.AdGroup
	Types  []domain.AdType
}

// ListingUseCase serves the read-only selection-UI views.
type ListingUseCase interface {
	CampaignCategories(ctx context.Context, tenant domain.Domain) (*CampaignCategories, error)
	GroupTypes(ctx context.Context, tenant domain.Domain) (*GroupTypes, error)
}

// MediaStore persists uploaded creative media and returns the stored
// reference. Storage internals are an external collaborator; the disk
// adapter in this repo is the default implementation.
type MediaStore interface {
	Save(name string, content io.Reader) (string, error)
}
