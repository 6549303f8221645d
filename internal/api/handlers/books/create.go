package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
)

// Create adds a book by its identifier, pulling the rest of the record
// from the metadata service.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ISBN string `json:"isbn"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	book, err := h.svc.AddByISBN(r.Context(), body.ISBN)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookResponse{
		Message: "Book added successfully",
		Book:    book,
	})
}
