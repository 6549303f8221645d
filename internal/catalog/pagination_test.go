package catalog

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name                     string
		limit, skip, count, total int
		want                     Pagination
	}{
		{
			name: "first page of many",
			limit: 10, skip: 0, count: 10, total: 35,
			want: Pagination{Limit: 10, Skip: 0, Count: 10, Total: 35, HasNext: true, HasPrev: false, Page: 1, TotalPages: 4},
		},
		{
			name: "middle page",
			limit: 10, skip: 10, count: 10, total: 35,
			want: Pagination{Limit: 10, Skip: 10, Count: 10, Total: 35, HasNext: true, HasPrev: true, Page: 2, TotalPages: 4},
		},
		{
			name: "last short page",
			limit: 10, skip: 30, count: 5, total: 35,
			want: Pagination{Limit: 10, Skip: 30, Count: 5, Total: 35, HasNext: false, HasPrev: true, Page: 4, TotalPages: 4},
		},
		{
			name: "empty collection",
			limit: 50, skip: 0, count: 0, total: 0,
			want: Pagination{Limit: 50, Skip: 0, Count: 0, Total: 0, HasNext: false, HasPrev: false, Page: 1, TotalPages: 0},
		},
		{
			name: "exact multiple",
			limit: 10, skip: 0, count: 10, total: 20,
			want: Pagination{Limit: 10, Skip: 0, Count: 10, Total: 20, HasNext: true, HasPrev: false, Page: 1, TotalPages: 2},
		},
		{
			name: "skip beyond total",
			limit: 10, skip: 100, count: 0, total: 35,
			want: Pagination{Limit: 10, Skip: 100, Count: 0, Total: 35, HasNext: true, HasPrev: true, Page: 11, TotalPages: 4},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NewPagination(c.limit, c.skip, c.count, c.total)
			if got != c.want {
				t.Errorf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

// total_pages == 0 iff total == 0, and page == 1 iff skip < limit.
func TestPaginationInvariants(t *testing.T) {
	for _, limit := range []int{1, 7, 50, 100} {
		for _, skip := range []int{0, 1, 49, 50, 99, 200} {
			for _, total := range []int{0, 1, 50, 101} {
				count := total - skip
				if count < 0 {
					count = 0
				}
				if count > limit {
					count = limit
				}
				p := NewPagination(limit, skip, count, total)
				if (p.TotalPages == 0) != (total == 0) {
					t.Errorf("limit=%d skip=%d total=%d: total_pages=%d", limit, skip, total, p.TotalPages)
				}
				if (p.Page == 1) != (skip < limit) {
					t.Errorf("limit=%d skip=%d: page=%d", limit, skip, p.Page)
				}
			}
		}
	}
}
