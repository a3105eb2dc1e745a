package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

type stubAdGroups struct {
	port.AdGroupRepository

	created *domain.AdGroup
}

func (s *stubAdGroups) CreateAdGroup(_ context.Context, g *domain.AdGroup) error {
	g.ID = 301
	s.created = g
	return nil
}

func (s *stubAdGroups) GetAdGroup(_ context.Context, _, id int64) (*domain.AdGroup, error) {
	if s.created != nil && s.created.ID == id {
		out := *s.created
		out.CampaignName = "Spring push"
		out.CategoryName = "news"
		return &out, nil
	}
	return nil, port.ErrNotFound
}

func TestAdGroupCreate(t *testing.T) {
	campaigns := &stubCampaigns{byID: map[int64]domain.Campaign{
		10: {ID: 10, DomainID: 1},
	}}
	groups := &stubAdGroups{}
	svc := NewAdGroupService(groups, campaigns)

	g, err := svc.Create(context.Background(), domain.Domain{ID: 1}, port.AdGroupInput{
		CampaignID: 10,
		CategoryID: 2,
		Name:       "Front page",
	})
	require.NoError(t, err)
	require.EqualValues(t, 301, g.ID)
	require.Equal(t, "Spring push", g.CampaignName)
	require.Equal(t, "news", g.CategoryName)
}

// A campaign belonging to another tenant must be rejected as a validation
// failure, not silently accepted through the foreign key.
func TestAdGroupCreateRejectsForeignCampaign(t *testing.T) {
	campaigns := &stubCampaigns{byID: map[int64]domain.Campaign{
		20: {ID: 20, DomainID: 2},
	}}
	svc := NewAdGroupService(&stubAdGroups{}, campaigns)

	_, err := svc.Create(context.Background(), domain.Domain{ID: 1}, port.AdGroupInput{
		CampaignID: 20,
		CategoryID: 2,
		Name:       "Front page",
	})
	v, ok := port.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, v, "campaign")
}

func TestAdGroupValidationRequiredFields(t *testing.T) {
	svc := NewAdGroupService(&stubAdGroups{}, &stubCampaigns{})

	_, err := svc.Create(context.Background(), domain.Domain{ID: 1}, port.AdGroupInput{})
	v, ok := port.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, v, "name")
	require.Contains(t, v, "campaign")
	require.Contains(t, v, "category")
}
