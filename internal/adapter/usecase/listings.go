package usecase

import (
	"context"
	"time"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// ListingService serves the read-only selection-UI views: the shared
// lookup tables paired with the tenant's own collections.
type ListingService struct {
	campaigns port.CampaignRepository
	groups    port.AdGroupRepository
	lookups   port.LookupRepository

	now func() time.Time
}

// NewListingService creates the listing service.
func NewListingService(campaigns port.CampaignRepository, groups port.AdGroupRepository, lookups port.LookupRepository) *ListingService {
	return &ListingService{campaigns: campaigns, groups: groups, lookups: lookups, now: time.Now}
}

// CampaignCategories returns every category plus the tenant's campaigns
// currently running (active and inside the start/end window).
func (s *ListingService) CampaignCategories(ctx context.Context, tenant domain.Domain) (*port.CampaignCategories, error) {
	categories, err := s.lookups.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.RunningCampaigns(ctx, tenant.ID, s.now())
	if err != nil {
		return nil, err
	}
	return &port.CampaignCategories{Categories: categories, Campaigns: campaigns}, nil
}

// GroupTypes returns the tenant's ad groups plus every ad format type.
func (s *ListingService) GroupTypes(ctx context.Context, tenant domain.Domain) (*port.GroupTypes, error) {
	groups, err := s.groups.AdGroupsForDomain(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	types, err := s.lookups.ListAdTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &port.GroupTypes{Groups: groups, Types: types}, nil
}
