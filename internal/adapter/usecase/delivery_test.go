package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

type stubDomains struct {
	port.DomainRepository
	known map[string]int64
}

func (s *stubDomains) DomainByExternalID(_ context.Context, domainID string) (*domain.Domain, error) {
	if id, ok := s.known[domainID]; ok {
		return &domain.Domain{ID: id, DomainID: domainID}, nil
	}
	return nil, port.ErrNotFound
}

type stubAds struct {
	port.AdvertisementRepository

	mu        sync.Mutex
	eligible  []domain.Advertisement
	delivered map[int64]int
	clicks    map[int64]int
}

func newStubAds(eligible ...domain.Advertisement) *stubAds {
	return &stubAds{
		eligible:  eligible,
		delivered: map[int64]int{},
		clicks:    map[int64]int{},
	}
}

func (s *stubAds) EligibleAdvertisements(_ context.Context, _ int64, _ time.Time) ([]domain.Advertisement, error) {
	return s.eligible, nil
}

func (s *stubAds) IncrementDelivered(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered[id]++
	return nil
}

func (s *stubAds) RegisterClick(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.eligible {
		if a.ID == id {
			s.clicks[id]++
			return nil
		}
	}
	return port.ErrNotFound
}

func newDeliveryFixture(ads *stubAds) *DeliveryService {
	return NewDeliveryService(&stubDomains{known: map[string]int64{"demo": 7}}, ads)
}

func TestSelectAdSingleEligible(t *testing.T) {
	ads := newStubAds(domain.Advertisement{ID: 11, AdText: "only", IsActive: true})
	svc := newDeliveryFixture(ads)

	const trials = 5
	for i := 0; i < trials; i++ {
		ad, err := svc.SelectAd(context.Background(), "demo")
		require.NoError(t, err)
		require.NotNil(t, ad)
		require.EqualValues(t, 11, ad.ID)
	}
	require.Equal(t, trials, ads.delivered[11])
}

func TestSelectAdSeededSelection(t *testing.T) {
	ads := newStubAds(
		domain.Advertisement{ID: 1},
		domain.Advertisement{ID: 2},
		domain.Advertisement{ID: 3},
	)
	svc := newDeliveryFixture(ads)

	// Deterministic source: selection must follow it exactly.
	seq := []int{2, 0, 1}
	var calls int
	svc.randInt = func(n int) int {
		require.Equal(t, 3, n)
		v := seq[calls%len(seq)]
		calls++
		return v
	}

	var got []int64
	for range seq {
		ad, err := svc.SelectAd(context.Background(), "demo")
		require.NoError(t, err)
		got = append(got, ad.ID)
	}
	require.Equal(t, []int64{3, 1, 2}, got)
}

func TestSelectAdIncrementsReturnedCounter(t *testing.T) {
	ads := newStubAds(domain.Advertisement{ID: 4, Delivered: 41})
	svc := newDeliveryFixture(ads)

	ad, err := svc.SelectAd(context.Background(), "demo")
	require.NoError(t, err)
	require.EqualValues(t, 42, ad.Delivered)
}

func TestSelectAdNoEligible(t *testing.T) {
	ads := newStubAds()
	svc := newDeliveryFixture(ads)

	ad, err := svc.SelectAd(context.Background(), "demo")
	require.NoError(t, err)
	require.Nil(t, ad)
	require.Empty(t, ads.delivered)
}

func TestSelectAdUnknownDomain(t *testing.T) {
	svc := newDeliveryFixture(newStubAds())

	_, err := svc.SelectAd(context.Background(), "nope")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestRegisterClick(t *testing.T) {
	ads := newStubAds(domain.Advertisement{ID: 9})
	svc := newDeliveryFixture(ads)

	url, err := svc.RegisterClick(context.Background(), 9, "https://example.com/landing")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/landing", url)
	require.Equal(t, 1, ads.clicks[9])
}

func TestRegisterClickUnknown(t *testing.T) {
	svc := newDeliveryFixture(newStubAds())

	_, err := svc.RegisterClick(context.Background(), 9, "https://example.com")
	require.ErrorIs(t, err, port.ErrNotFound)
}

// Concurrent clicks on the same advertisement must each count once.
func TestRegisterClickConcurrent(t *testing.T) {
	ads := newStubAds(domain.Advertisement{ID: 3})
	svc := newDeliveryFixture(ads)

	const count = 20
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RegisterClick(context.Background(), 3, "https://example.com")
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, count, ads.clicks[3])
}
