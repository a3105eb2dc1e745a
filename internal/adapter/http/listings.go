package httpadapter

import (
	"net/http"

	"adcenter/internal/core/domain"
)

type lookupJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func categoriesToJSON(cs []domain.Category) []lookupJSON {
	out := make([]lookupJSON, 0, len(cs))
	for _, c := range cs {
		out = append(out, lookupJSON{ID: c.ID, Name: c.Name})
	}
	return out
}

func adTypesToJSON(ts []domain.AdType) []lookupJSON {
	out := make([]lookupJSON, 0, len(ts))
	for _, t := range ts {
		out = append(out, lookupJSON{ID: t.ID, Name: t.Name})
	}
	return out
}

// handleCampaignCategories populates the campaign selection UI: every
// category plus the tenant's currently running campaigns.
func (h *Handler) handleCampaignCategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.listings.CampaignCategories(r.Context(), tenantFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, map[string]any{
		"categories": categoriesToJSON(res.Categories),
		"campaigns":  campaignsToJSON(res.Campaigns),
	})
}

// handleGroupTypes populates the advertisement form: the tenant's ad
// groups plus every ad format type.
func (h *Handler) handleGroupTypes(w http.ResponseWriter, r *http.Request) {
	res, err := h.listings.GroupTypes(r.Context(), tenantFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, map[string]any{
		"groups": adGroupsToJSON(res.Groups),
		"types":  adTypesToJSON(res.Types),
	})
}
