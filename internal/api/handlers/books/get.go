package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
)

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Get(r.Context(), r.PathValue("isbn"))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookResponse{
		Message: "Book retrieved successfully",
		Book:    book,
	})
}
