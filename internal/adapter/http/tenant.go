package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"adcenter/internal/core/domain"
	"adcenter/internal/core/port"
)

type contextKey int

const tenantKey contextKey = iota

// apiKeyHeader carries the dashboard caller's key. Authentication itself
// happens upstream; this middleware only maps the key to its Domain row so
// every handler below it can scope queries.
const apiKeyHeader = "X-Api-Key"

func (h *Handler) resolveTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if key == "" {
			h.writeFieldErrors(w, http.StatusUnauthorized, map[string][]string{
				"detail": {"API key required."},
			})
			return
		}
		d, err := h.domains.DomainByAPIKey(r.Context(), key)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				h.writeFieldErrors(w, http.StatusUnauthorized, map[string][]string{
					"detail": {"Unknown API key."},
				})
				return
			}
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tenantKey, *d)))
	})
}

// tenantFrom returns the Domain the middleware resolved for this request.
func tenantFrom(r *http.Request) domain.Domain {
	return r.Context().Value(tenantKey).(domain.Domain)
}
