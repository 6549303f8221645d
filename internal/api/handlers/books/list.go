package books

import "net/http"

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.ListAll(r.Context(), q.Get("limit"), q.Get("skip"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeList(w, "Books retrieved successfully", res)
}
