package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adcenter/internal/core/port"
)

// The uniform response wrapper: successful payloads travel under "data",
// failures under "errors" as a field → messages map. "data" is always
// present on success, even when the payload is an empty object.
type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Errors map[string][]string `json:"errors"`
}

// paginated is the list payload placed under "data". Next and Previous are
// page numbers, nil at the edges.
type paginated struct {
	Count    int64 `json:"count"`
	Next     *int  `json:"next"`
	Previous *int  `json:"previous"`
	Results  any   `json:"results"`
}

func newPaginated(q port.ListQuery, total int64, results any) paginated {
	p := paginated{Count: total, Results: results}
	if int64(q.Page*q.PageSize) < total {
		next := q.Page + 1
		p.Next = &next
	}
	if q.Page > 1 {
		prev := q.Page - 1
		p.Previous = &prev
	}
	return p
}

func (h *Handler) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: data}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeFieldErrors(w http.ResponseWriter, status int, errs map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Errors: errs}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto the envelope: validation failures
// become 400 with their field map, absent entities 404, everything else is
// logged and answered with an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if v, ok := port.AsValidationError(err); ok {
		h.writeFieldErrors(w, http.StatusBadRequest, v)
		return
	}
	if errors.Is(err, port.ErrNotFound) {
		h.writeFieldErrors(w, http.StatusNotFound, map[string][]string{
			"detail": {"Not found."},
		})
		return
	}
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	h.writeFieldErrors(w, http.StatusInternalServerError, map[string][]string{
		"detail": {"Internal server error."},
	})
}
