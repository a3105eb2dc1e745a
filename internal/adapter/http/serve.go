package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"adcenter/internal/core/port"
)

// handleGetAds serves one advertisement for the external domain identifier
// in the `domain` query parameter. A missing or unknown identifier is an
// error; a domain with no eligible ads is answered with 200 and an empty
// data object, so clients can tell "no ad right now" from a bad request.
func (h *Handler) handleGetAds(w http.ResponseWriter, r *http.Request) {
	domainID := r.URL.Query().Get("domain")
	if domainID == "" {
		h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
			"domain": {"Domain id is required"},
		})
		return
	}
	ad, err := h.delivery.SelectAd(r.Context(), domainID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			h.writeFieldErrors(w, http.StatusBadRequest, map[string][]string{
				"domain": {"Unknown domain id"},
			})
			return
		}
		h.writeError(w, r, err)
		return
	}
	if ad == nil {
		h.writeData(w, http.StatusOK, struct{}{})
		return
	}
	h.writeData(w, http.StatusOK, advertisementToJSON(*ad))
}

// handleAdRedirect records a click for the advertisement in `aid` and
// redirects to the caller-supplied `url`. The target is used as given; it
// is not matched against the advertisement's stored URL.
func (h *Handler) handleAdRedirect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	errs := map[string][]string{}
	aid, err := strconv.ParseInt(q.Get("aid"), 10, 64)
	if q.Get("aid") == "" || err != nil || aid <= 0 {
		errs["aid"] = []string{"A valid advertisement id is required"}
	}
	target := q.Get("url")
	if target == "" {
		errs["url"] = []string{"Redirect url is required"}
	}
	if len(errs) > 0 {
		h.writeFieldErrors(w, http.StatusBadRequest, errs)
		return
	}
	target, err = h.delivery.RegisterClick(r.Context(), aid, target)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
