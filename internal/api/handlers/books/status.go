package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
)

// UpdateStatus moves a book between unread, in_progress and read.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ReadingStatus string `json:"reading_status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	book, err := h.svc.UpdateStatus(r.Context(), r.PathValue("isbn"), body.ReadingStatus)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookResponse{
		Message: "Reading status updated successfully",
		Book:    book,
	})
}

func (h *Handler) ByStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.ByStatus(r.Context(), r.PathValue("status"), q.Get("limit"), q.Get("skip"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeList(w, "Books retrieved successfully", res)
}
