package usecase

import (
	"context"
	"math/rand"
	"time"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// DeliveryService implements the public ad-serving operations: random ad
// selection with impression counting, and click-redirect registration.
type DeliveryService struct {
	domains port.DomainRepository
	ads     port.AdvertisementRepository

	// randInt returns a uniform value in [0,n). Injected so selection is
	// reproducible under test; production wiring passes rand.Intn.
	randInt func(n int) int
	now     func() time.Time
}

// NewDeliveryService creates a delivery service backed by math/rand.
func NewDeliveryService(domains port.DomainRepository, ads port.AdvertisementRepository) *DeliveryService {
	return &DeliveryService{domains: domains, ads: ads, randInt: rand.Intn, now: time.Now}
}

// SelectAd resolves the external domain identifier, collects the domain's
// eligible advertisements and picks one uniformly at random, bumping its
// delivered counter. An empty eligible set is a valid outcome and returns
// (nil, nil); an unknown identifier returns ErrNotFound.
//
// Eligibility requires the advertisement to be active and its parent
// campaign to be running (active flag plus date window). Serving creatives
// of paused or expired campaigns is deliberately not supported.
func (s *DeliveryService) SelectAd(ctx context.Context, domainID string) (*domain.Advertisement, error) {
	d, err := s.domains.DomainByExternalID(ctx, domainID)
	if err != nil {
		return nil, err
	}
	ads, err := s.ads.EligibleAdvertisements(ctx, d.ID, s.now())
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, nil
	}
	ad := ads[s.randInt(len(ads))]
	if err = s.ads.IncrementDelivered(ctx, ad.ID); err != nil {
		return nil, err
	}
	ad.Delivered++
	return &ad, nil
}

// RegisterClick bumps the advertisement's click counter and hands back the
// caller-supplied redirect target. The target is not checked against the
// advertisement's stored URL; publishers embed their own tracking targets.
// An unknown advertisement id returns ErrNotFound.
func (s *DeliveryService) RegisterClick(ctx context.Context, adID int64, targetURL string) (string, error) {
	if err := s.ads.RegisterClick(ctx, adID); err != nil {
		return "", err
	}
	return targetURL, nil
}
