package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
	"libraryapi/internal/catalog"
	"libraryapi/internal/models"
)

// Search matches books against any combination of a general query,
// title, author and category. At least one criterion is required.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := catalog.SearchCriteria{
		Query:    q.Get("query"),
		Title:    q.Get("title"),
		Author:   q.Get("author"),
		Category: q.Get("category"),
	}

	res, echoed, err := h.svc.Search(r.Context(), criteria, q.Get("limit"), q.Get("skip"))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Message        string                 `json:"message"`
		Books          []models.Book          `json:"books"`
		Pagination     catalog.Pagination     `json:"pagination"`
		SearchCriteria catalog.SearchCriteria `json:"search_criteria"`
	}{
		Message:        "Search completed successfully",
		Books:          res.Books,
		Pagination:     res.Pagination,
		SearchCriteria: echoed,
	})
}
