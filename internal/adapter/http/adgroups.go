package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

type adGroupJSON struct {
	ID           int64     `json:"id"`
	Campaign     int64     `json:"campaign"`
	CampaignName string    `json:"campaign_name"`
	Category     int64     `json:"category"`
	CategoryName string    `json:"category_name"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func adGroupToJSON(g domain.AdGroup) adGroupJSON {
	return adGroupJSON{
		ID:           g.ID,
		Campaign:     g.CampaignID,
		CampaignName: g.CampaignName,
		Category:     g.CategoryID,
		CategoryName: g.CategoryName,
		Name:         g.Name,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func adGroupsToJSON(gs []domain.AdGroup) []adGroupJSON {
	out := make([]adGroupJSON, 0, len(gs))
	for _, g := range gs {
		out = append(out, adGroupToJSON(g))
	}
	return out
}

type adGroupPayload struct {
	Campaign int64  `json:"campaign"`
	Category int64  `json:"category"`
	Name     string `json:"name"`
}

func (p adGroupPayload) input() port.AdGroupInput {
	return port.AdGroupInput{CampaignID: p.Campaign, CategoryID: p.Category, Name: p.Name}
}

func (h *Handler) handleAdGroupList(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	items, total, err := h.adgroups.List(r.Context(), tenantFrom(r), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, newPaginated(q, total, adGroupsToJSON(items)))
}

func (h *Handler) handleAdGroupGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	g, err := h.adgroups.Get(r.Context(), tenantFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, adGroupToJSON(*g))
}

func (h *Handler) handleAdGroupCreate(w http.ResponseWriter, r *http.Request) {
	var p adGroupPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"detail": {"Invalid JSON body."},
		})
		return
	}
	g, err := h.adgroups.Create(r.Context(), tenantFrom(r), p.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, adGroupToJSON(*g))
}

func (h *Handler) handleAdGroupUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	var p adGroupPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"detail": {"Invalid JSON body."},
		})
		return
	}
	g, err := h.adgroups.Update(r.Context(), tenantFrom(r), id, p.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, adGroupToJSON(*g))
}

func (h *Handler) handleAdGroupDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	if err := h.adgroups.Delete(r.Context(), tenantFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, map[string]string{"msg": "AdGroup deleted successfully"})
}
