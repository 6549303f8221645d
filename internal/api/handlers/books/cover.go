package books

import (
	"net/http"

	"libraryapi/internal/api/httpx"
)

const maxCoverSize = 5 << 20

// Cover accepts multipart/form-data with a "cover" file and stores it
// as the book's cover image.
func (h *Handler) Cover(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCoverSize); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Missing cover file")
		return
	}
	defer file.Close()

	book, err := h.svc.AttachCover(r.Context(), r.PathValue("isbn"), file, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookResponse{
		Message: "Cover uploaded successfully",
		Book:    book,
	})
}
