package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

type stubListingCampaigns struct {
	port.CampaignRepository

	running []domain.Campaign
	gotNow  time.Time
}

func (s *stubListingCampaigns) RunningCampaigns(_ context.Context, domainID int64, now time.Time) ([]domain.Campaign, error) {
	s.gotNow = now
	out := make([]domain.Campaign, 0, len(s.running))
	for _, c := range s.running {
		if c.DomainID == domainID && c.Running(now) {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubListingGroups struct {
	port.AdGroupRepository

	groups []domain.AdGroup
}

func (s *stubListingGroups) AdGroupsForDomain(_ context.Context, _ int64) ([]domain.AdGroup, error) {
	return s.groups, nil
}

type stubLookups struct {
	categories []domain.Category
	types      []domain.AdType
}

func (s *stubLookups) ListCategories(_ context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *stubLookups) ListAdTypes(_ context.Context) ([]domain.AdType, error) {
	return s.types, nil
}

// The campaign/category view returns every category but only campaigns
// that are active and inside their date window.
func TestCampaignCategories(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	campaigns := &stubListingCampaigns{running: []domain.Campaign{
		{ID: 1, DomainID: 1, Name: "running", IsActive: true,
			StartDate: now.AddDate(0, 0, -5), EndDate: now.AddDate(0, 0, 5)},
		{ID: 2, DomainID: 1, Name: "expired", IsActive: true,
			StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, -1, 0)},
		{ID: 3, DomainID: 1, Name: "paused", IsActive: false,
			StartDate: now.AddDate(0, 0, -5), EndDate: now.AddDate(0, 0, 5)},
	}}
	svc := NewListingService(campaigns, &stubListingGroups{}, &stubLookups{
		categories: []domain.Category{{ID: 1, Name: "news"}, {ID: 2, Name: "tech"}},
	})
	svc.now = func() time.Time { return now }

	res, err := svc.CampaignCategories(context.Background(), domain.Domain{ID: 1})
	require.NoError(t, err)
	require.Len(t, res.Categories, 2)
	require.Len(t, res.Campaigns, 1)
	require.Equal(t, "running", res.Campaigns[0].Name)
	require.Equal(t, now, campaigns.gotNow)
}

func TestGroupTypes(t *testing.T) {
	groups := &stubListingGroups{groups: []domain.AdGroup{{ID: 4, Name: "front"}}}
	svc := NewListingService(&stubListingCampaigns{}, groups, &stubLookups{
		types: []domain.AdType{{ID: 1, Name: "banner"}, {ID: 2, Name: "video"}},
	})

	res, err := svc.GroupTypes(context.Background(), domain.Domain{ID: 9})
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	require.Len(t, res.Types, 2)
}
