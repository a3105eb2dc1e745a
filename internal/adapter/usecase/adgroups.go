package usecase

import (
	"context"
	"errors"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// AdGroupService implements the tenant-scoped ad group collection. Parent
// campaigns are validated against the tenant's own set, so a group can
// never be attached to another tenant's campaign.
type AdGroupService struct {
	groups    port.AdGroupRepository
	campaigns port.CampaignRepository
}

// NewAdGroupService creates the ad group collection service.
func NewAdGroupService(groups port.AdGroupRepository, campaigns port.CampaignRepository) *AdGroupService {
	return &AdGroupService{groups: groups, campaigns: campaigns}
}

func (s *AdGroupService) validate(ctx context.Context, tenant domain.Domain, in port.AdGroupInput) error {
	errs := port.ValidationError{}
	if in.Name == "" {
		errs.Add("name", "This field is required.")
	}
	if in.CategoryID == 0 {
		errs.Add("category", "This field is required.")
	}
	switch {
	case in.CampaignID == 0:
		errs.Add("campaign", "This field is required.")
	default:
		if _, err := s.campaigns.GetCampaign(ctx, tenant.ID, in.CampaignID); err != nil {
			if !errors.Is(err, port.ErrNotFound) {
				return err
			}
			errs.Add("campaign", "Campaign does not exist for this domain.")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// List returns one page of the tenant's ad groups plus the total count.
func (s *AdGroupService) List(ctx context.Context, tenant domain.Domain, q port.ListQuery) ([]domain.AdGroup, int64, error) {
	return s.groups.ListAdGroups(ctx, tenant.ID, q)
}

// Get fetches an ad group inside the tenant's visible set.
func (s *AdGroupService) Get(ctx context.Context, tenant domain.Domain, id int64) (*domain.AdGroup, error) {
	return s.groups.GetAdGroup(ctx, tenant.ID, id)
}

// Create validates the payload and persists a new ad group.
func (s *AdGroupService) Create(ctx context.Context, tenant domain.Domain, in port.AdGroupInput) (*domain.AdGroup, error) {
	if err := s.validate(ctx, tenant, in); err != nil {
		return nil, err
	}
	g := &domain.AdGroup{
		CampaignID: in.CampaignID,
		CategoryID: in.CategoryID,
		Name:       in.Name,
	}
	if err := s.groups.CreateAdGroup(ctx, g); err != nil {
		return nil, err
	}
	return s.groups.GetAdGroup(ctx, tenant.ID, g.ID)
}

// Update replaces the ad group's fields within the tenant's scope.
func (s *AdGroupService) Update(ctx context.Context, tenant domain.Domain, id int64, in port.AdGroupInput) (*domain.AdGroup, error) {
	if err := s.validate(ctx, tenant, in); err != nil {
		return nil, err
	}
	g := &domain.AdGroup{
		ID:         id,
		CampaignID: in.CampaignID,
		CategoryID: in.CategoryID,
		Name:       in.Name,
	}
	if err := s.groups.UpdateAdGroup(ctx, tenant.ID, g); err != nil {
		return nil, err
	}
	return s.groups.GetAdGroup(ctx, tenant.ID, id)
}

// Delete hard-deletes the ad group within the tenant's scope.
func (s *AdGroupService) Delete(ctx context.Context, tenant domain.Domain, id int64) error {
	return s.groups.DeleteAdGroup(ctx, tenant.ID, id)
}
