package catalog

// Pagination is the envelope attached to every listing response. It is
// derived, never stored; each operation recomputes it the same way.
type Pagination struct {
	Limit      int  `json:"limit"`
	Skip       int  `json:"skip"`
	Count      int  `json:"count"`
	Total      int  `json:"total"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
}

func NewPagination(limit, skip, count, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Limit:      limit,
		Skip:       skip,
		Count:      count,
		Total:      total,
		HasNext:    skip+count < total,
		HasPrev:    skip > 0,
		Page:       skip/limit + 1,
		TotalPages: totalPages,
	}
}
