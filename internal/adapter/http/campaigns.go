package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

type campaignJSON struct {
	ID        int64     `json:"id"`
	Domain    int64     `json:"domain"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func campaignToJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:        c.ID,
		Domain:    c.DomainID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func campaignsToJSON(cs []domain.Campaign) []campaignJSON {
	out := make([]campaignJSON, 0, len(cs))
	for _, c := range cs {
		out = append(out, campaignToJSON(c))
	}
	return out
}

// campaignPayload is the create/update body. The owning domain is not part
// of it; the resolved tenant supplies it.
type campaignPayload struct {
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (p campaignPayload) input() port.CampaignInput {
	return port.CampaignInput{
		Name:      p.Name,
		IsActive:  p.IsActive,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	items, total, err := h.campaigns.List(r.Context(), tenantFrom(r), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, newPaginated(q, total, campaignsToJSON(items)))
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	c, err := h.campaigns.Get(r.Context(), tenantFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, campaignToJSON(*c))
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var p campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"detail": {"Invalid JSON body."},
		})
		return
	}
	c, err := h.campaigns.Create(r.Context(), tenantFrom(r), p.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, campaignToJSON(*c))
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	var p campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"detail": {"Invalid JSON body."},
		})
		return
	}
	c, err := h.campaigns.Update(r.Context(), tenantFrom(r), id, p.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, campaignToJSON(*c))
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	if err := h.campaigns.Delete(r.Context(), tenantFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, map[string]string{"msg": "Campaign deleted successfully"})
}
