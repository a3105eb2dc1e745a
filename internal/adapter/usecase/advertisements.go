package usecase

import (
	"context"
	"errors"
	"fmt"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// AdvertisementService implements the tenant-scoped advertisement
// collection. An optional media upload is stored through the MediaStore
// port and attached as a second persistence step after the primary save.
type AdvertisementService struct {
	ads    port.AdvertisementRepository
	groups port.AdGroupRepository
	media  port.MediaStore
}

// NewAdvertisementService creates the advertisement collection service.
func NewAdvertisementService(ads port.AdvertisementRepository, groups port.AdGroupRepository, media port.MediaStore) *AdvertisementService {
	return &AdvertisementService{ads: ads, groups: groups, media: media}
}

func (s *AdvertisementService) validate(ctx context.Context, tenant domain.Domain, in port.AdvertisementInput) error {
	errs := port.ValidationError{}
	if in.AdText == "" {
		errs.Add("ad_text", "This field is required.")
	}
	if in.AdURL == "" {
		errs.Add("ad_url", "This field is required.")
	}
	if in.AdTypeID == 0 {
		errs.Add("ad_type", "This field is required.")
	}
	switch {
	case in.AdGroupID == 0:
		errs.Add("adgroup", "This field is required.")
	default:
		if _, err := s.groups.GetAdGroup(ctx, tenant.ID, in.AdGroupID); err != nil {
			if !errors.Is(err, port.ErrNotFound) {
				return err
			}
			errs.Add("adgroup", "Ad group does not exist for this domain.")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *AdvertisementService) attachMedia(ctx context.Context, a *domain.Advertisement, media *port.MediaUpload) error {
	if media == nil {
		return nil
	}
	ref, err := s.media.Save(media.Name, media.Content)
	if err != nil {
		return fmt.Errorf("store media: %w", err)
	}
	if err = s.ads.SetAdvertisementMedia(ctx, a.ID, ref); err != nil {
		return err
	}
	a.Media = &ref
	return nil
}

// List returns one page of the tenant's advertisements plus the total count.
func (s *AdvertisementService) List(ctx context.Context, tenant domain.Domain, q port.ListQuery) ([]domain.Advertisement, int64, error) {
	return s.ads.ListAdvertisements(ctx, tenant.ID, q)
}

// Get fetches an advertisement inside the tenant's visible set.
func (s *AdvertisementService) Get(ctx context.Context, tenant domain.Domain, id int64) (*domain.Advertisement, error) {
	return s.ads.GetAdvertisement(ctx, tenant.ID, id)
}

// Create validates the payload, persists the advertisement and then
// attaches media when supplied.
func (s *AdvertisementService) Create(ctx context.Context, tenant domain.Domain, in port.AdvertisementInput, media *port.MediaUpload) (*domain.Advertisement, error) {
	if err := s.validate(ctx, tenant, in); err != nil {
		return nil, err
	}
	a := &domain.Advertisement{
		AdGroupID: in.AdGroupID,
		AdTypeID:  in.AdTypeID,
		AdText:    in.AdText,
		AdURL:     in.AdURL,
		IsActive:  in.IsActive,
	}
	if err := s.ads.CreateAdvertisement(ctx, a); err != nil {
		return nil, err
	}
	if err := s.attachMedia(ctx, a, media); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the advertisement's fields within the tenant's scope and
// then attaches media when supplied. Counters survive the replace.
func (s *AdvertisementService) Update(ctx context.Context, tenant domain.Domain, id int64, in port.AdvertisementInput, media *port.MediaUpload) (*domain.Advertisement, error) {
	if err := s.validate(ctx, tenant, in); err != nil {
		return nil, err
	}
	a := &domain.Advertisement{
		ID:        id,
		AdGroupID: in.AdGroupID,
		AdTypeID:  in.AdTypeID,
		AdText:    in.AdText,
		AdURL:     in.AdURL,
		IsActive:  in.IsActive,
	}
	if err := s.ads.UpdateAdvertisement(ctx, tenant.ID, a); err != nil {
		return nil, err
	}
	if err := s.attachMedia(ctx, a, media); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete hard-deletes the advertisement within the tenant's scope.
func (s *AdvertisementService) Delete(ctx context.Context, tenant domain.Domain, id int64) error {
	return s.ads.DeleteAdvertisement(ctx, tenant.ID, id)
}
