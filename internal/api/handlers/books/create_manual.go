package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
	"libraryapi/internal/validate"
)

// CreateManual adds a book from caller-supplied fields, without touching
// the metadata service.
func (h *Handler) CreateManual(w http.ResponseWriter, r *http.Request) {
	var body validate.ManualBookInput
	if !decodeBody(w, r, &body) {
		return
	}

	book, err := h.svc.AddManual(r.Context(), body)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookResponse{
		Message: "Book added successfully",
		Book:    book,
	})
}
