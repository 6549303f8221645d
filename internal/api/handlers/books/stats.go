package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
	"libraryapi/internal/catalog"
)

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Message    string             `json:"message"`
		Statistics catalog.Statistics `json:"statistics"`
	}{
		Message:    "Statistics retrieved successfully",
		Statistics: stats,
	})
}
