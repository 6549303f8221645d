package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
	"libraryapi/internal/models"
)

// Update applies a partial update. The identifier itself is immutable;
// an "isbn" field in the body counts as an unknown field.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.BookPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	book, err := h.svc.Update(r.Context(), r.PathValue("isbn"), patch)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookResponse{
		Message: "Book updated successfully",
		Book:    book,
	})
}
