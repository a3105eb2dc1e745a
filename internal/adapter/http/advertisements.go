package httpadapter

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

// maxMediaBytes bounds the in-memory part of multipart parsing; larger
// uploads spill to temporary files.
const maxMediaBytes = 32 << 20

type advertisementJSON struct {
	ID         int64     `json:"id"`
	AdGroup    int64     `json:"adgroup"`
	AdType     int64     `json:"ad_type"`
	AdText     string    `json:"ad_text"`
	AdURL      string    `json:"ad_url"`
	Media      *string   `json:"media"`
	IsActive   bool      `json:"is_active"`
	Delivered  int64     `json:"delivered"`
	ClickCount int64     `json:"click_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func advertisementToJSON(a domain.Advertisement) advertisementJSON {
	return advertisementJSON{
		ID:         a.ID,
		AdGroup:    a.AdGroupID,
		AdType:     a.AdTypeID,
		AdText:     a.AdText,
		AdURL:      a.AdURL,
		Media:      a.Media,
		IsActive:   a.IsActive,
		Delivered:  a.Delivered,
		ClickCount: a.ClickCount,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func advertisementsToJSON(as []domain.Advertisement) []advertisementJSON {
	out := make([]advertisementJSON, 0, len(as))
	for _, a := range as {
		out = append(out, advertisementToJSON(a))
	}
	return out
}

type advertisementPayload struct {
	AdGroup  int64  `json:"adgroup"`
	AdType   int64  `json:"ad_type"`
	AdText   string `json:"ad_text"`
	AdURL    string `json:"ad_url"`
	IsActive bool   `json:"is_active"`
}

func (p advertisementPayload) input() port.AdvertisementInput {
	return port.AdvertisementInput{
		AdGroupID: p.AdGroup,
		AdTypeID:  p.AdType,
		AdText:    p.AdText,
		AdURL:     p.AdURL,
		IsActive:  p.IsActive,
	}
}

// decodeAdvertisement reads the create/update body. Multipart form data
// carries an optional `file` part next to the regular fields; a plain JSON
// body carries fields only. The returned cleanup closes the uploaded file
// and must always be called.
func decodeAdvertisement(r *http.Request) (port.AdvertisementInput, *port.MediaUpload, func(), error) {
	noop := func() {}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var p advertisementPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			return port.AdvertisementInput{}, nil, noop, err
		}
		return p.input(), nil, noop, nil
	}

	if err := r.ParseMultipartForm(maxMediaBytes); err != nil {
		return port.AdvertisementInput{}, nil, noop, err
	}
	var p advertisementPayload
	p.AdGroup, _ = strconv.ParseInt(r.FormValue("adgroup"), 10, 64)
	p.AdType, _ = strconv.ParseInt(r.FormValue("ad_type"), 10, 64)
	p.AdText = r.FormValue("ad_text")
	p.AdURL = r.FormValue("ad_url")
	p.IsActive, _ = strconv.ParseBool(r.FormValue("is_active"))

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return p.input(), nil, noop, nil
		}
		return port.AdvertisementInput{}, nil, noop, err
	}
	upload := &port.MediaUpload{Name: header.Filename, Content: file}
	return p.input(), upload, func() { _ = file.Close() }, nil
}

func (h *Handler) handleAdvertisementList(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	items, total, err := h.ads.List(r.Context(), tenantFrom(r), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, newPaginated(q, total, advertisementsToJSON(items)))
}

func (h *Handler) handleAdvertisementGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	a, err := h.ads.Get(r.Context(), tenantFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, advertisementToJSON(*a))
}

func (h *Handler) handleAdvertisementCreate(w http.ResponseWriter, r *http.Request) {
	in, media, cleanup, err := decodeAdvertisement(r)
	defer cleanup()
	if err != nil {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"detail": {"Invalid request body."},
		})
		return
	}
	a, err := h.ads.Create(r.Context(), tenantFrom(r), in, media)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, advertisementToJSON(*a))
}

func (h *Handler) handleAdvertisementUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	in, media, cleanup, err := decodeAdvertisement(r)
	defer cleanup()
	if err != nil {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"detail": {"Invalid request body."},
		})
		return
	}
	a, err := h.ads.Update(r.Context(), tenantFrom(r), id, in, media)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, advertisementToJSON(*a))
}

func (h *Handler) handleAdvertisementDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	if err := h.ads.Delete(r.Context(), tenantFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, map[string]string{"msg": "Advertisement deleted successfully"})
}
