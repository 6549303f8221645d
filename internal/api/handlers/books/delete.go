package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
)

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("isbn")); err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "Book deleted successfully"})
}
