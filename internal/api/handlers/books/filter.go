package books

import "net/http"

// Filter returns books matching any of the comma-separated categories.
func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.FilterByCategories(r.Context(), q.Get("categories"), q.Get("limit"), q.Get("skip"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeList(w, "Books filtered successfully", res)
}

func (h *Handler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.ByAuthor(r.Context(), r.PathValue("name"), q.Get("limit"), q.Get("skip"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeList(w, "Books retrieved successfully", res)
}

func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.ByCategory(r.Context(), r.PathValue("name"), q.Get("limit"), q.Get("skip"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeList(w, "Books retrieved successfully", res)
}
