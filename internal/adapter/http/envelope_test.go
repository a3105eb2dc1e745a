package httpadapter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"adcenter/internal/core/port"
)

func TestPaginatedEdges(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		next     *int
		previous *int
	}{
		{name: "single page", page: 1, pageSize: 20, total: 5, next: nil, previous: nil},
		{name: "first of many", page: 1, pageSize: 20, total: 45, next: ptr(2), previous: nil},
		{name: "middle", page: 2, pageSize: 20, total: 45, next: ptr(3), previous: ptr(1)},
		{name: "last", page: 3, pageSize: 20, total: 45, next: nil, previous: ptr(2)},
		{name: "exact boundary", page: 2, pageSize: 20, total: 40, next: nil, previous: ptr(1)},
		{name: "empty", page: 1, pageSize: 20, total: 0, next: nil, previous: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPaginated(port.ListQuery{Page: tc.page, PageSize: tc.pageSize}, tc.total, nil)
			require.Equal(t, tc.total, p.Count)
			require.Equal(t, tc.next, p.Next)
			require.Equal(t, tc.previous, p.Previous)
		})
	}
}

func ptr(v int) *int { return &v }
