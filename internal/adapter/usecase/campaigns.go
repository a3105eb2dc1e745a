package usecase

import (
	"context"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// CampaignService implements the tenant-scoped campaign collection.
type CampaignService struct {
	repo port.CampaignRepository
}

// NewCampaignService creates the campaign collection service.
func NewCampaignService(repo port.CampaignRepository) *CampaignService {
	return &CampaignService{repo: repo}
}

func validateCampaign(in port.CampaignInput) error {
	errs := port.ValidationError{}
	if in.Name == "" {
		errs.Add("name", "This field is required.")
	}
	if in.StartDate.IsZero() {
		errs.Add("start_date", "This field is required.")
	}
	if in.EndDate.IsZero() {
		errs.Add("end_date", "This field is required.")
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		errs.Add("end_date", "End date must not precede start date.")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// List returns one page of the tenant's campaigns plus the total count.
func (s *CampaignService) List(ctx context.Context, tenant domain.Domain, q port.ListQuery) ([]domain.Campaign, int64, error) {
	return s.repo.ListCampaigns(ctx, tenant.ID, q)
}

// Get fetches a campaign inside the tenant's visible set.
func (s *CampaignService) Get(ctx context.Context, tenant domain.Domain, id int64) (*domain.Campaign, error) {
	return s.repo.GetCampaign(ctx, tenant.ID, id)
}

// Create validates the payload and persists a campaign owned by the
// resolved tenant. The owning domain always comes from the tenant, never
// from the payload.
func (s *CampaignService) Create(ctx context.Context, tenant domain.Domain, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateCampaign(in); err != nil {
		return nil, err
	}
	c := &domain.Campaign{
		DomainID:  tenant.ID,
		Name:      in.Name,
		IsActive:  in.IsActive,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the campaign's fields. The fetch-and-write is tenant
// scoped, so an id belonging to another tenant behaves as absent.
func (s *CampaignService) Update(ctx context.Context, tenant domain.Domain, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateCampaign(in); err != nil {
		return nil, err
	}
	c := &domain.Campaign{
		ID:        id,
		DomainID:  tenant.ID,
		Name:      in.Name,
		IsActive:  in.IsActive,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if err := s.repo.UpdateCampaign(ctx, tenant.ID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete hard-deletes the campaign within the tenant's scope.
func (s *CampaignService) Delete(ctx context.Context, tenant domain.Domain, id int64) error {
	return s.repo.DeleteCampaign(ctx, tenant.ID, id)
}
