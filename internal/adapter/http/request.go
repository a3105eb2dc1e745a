package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adcenter/internal/core/port"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// listQuery reads the optional search term and page-number pagination
// parameters. Out-of-range values fall back to defaults rather than
// erroring; the collection contract treats them as UI noise.
func listQuery(r *http.Request) port.ListQuery {
	q := port.ListQuery{
		Search:   r.URL.Query().Get("q"),
		Page:     1,
		PageSize: defaultPageSize,
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		q.PageSize = min(v, maxPageSize)
	}
	return q
}

// pathID parses the {id} route parameter. The second return is false when
// the parameter is not a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
