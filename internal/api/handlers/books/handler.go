// Package books exposes the catalog over HTTP. Handlers decode input,
// delegate to the catalog service and render the message envelope;
// error translation lives in apperr.
package books

import (
	"encoding/json"
	"net/http"

	"libraryapi/internal/api/apperr"
	"libraryapi/internal/api/httpx"
	"libraryapi/internal/catalog"
	"libraryapi/internal/models"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

type bookResponse struct {
	Message string      `json:"message"`
	Book    models.Book `json:"book"`
}

type listResponse struct {
	Message    string             `json:"message"`
	Books      []models.Book      `json:"books"`
	Pagination catalog.Pagination `json:"pagination"`
}

func writeList(w http.ResponseWriter, message string, res catalog.ListResult) {
	httpx.WriteJSON(w, http.StatusOK, listResponse{
		Message:    message,
		Books:      res.Books,
		Pagination: res.Pagination,
	})
}

// decodeBody rejects malformed JSON and unknown fields up front.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Write(w, r, err)
}
