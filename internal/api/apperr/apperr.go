package apperr

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"libraryapi/internal/api/httpx"
	"libraryapi/internal/catalog"
	"libraryapi/internal/platform/googlebooks"
	"libraryapi/internal/repo/booksrepo"
	"libraryapi/internal/validate"
)

// Write maps a service-layer error onto an HTTP status and the standard
// {"message": ...} body. Unknown errors are logged and reported as 500
// without leaking internals.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		if s, msg, ok := fromPG(err); ok {
			status, message = s, msg
		}
		if status >= http.StatusInternalServerError {
			slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}
	}
	httpx.Error(w, status, message)
}

func classify(err error) (int, string) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, validationMessage(verr)
	}

	switch {
	case errors.Is(err, validate.ErrInvalidISBN):
		return http.StatusBadRequest, "Invalid ISBN format"
	case errors.Is(err, validate.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid reading status"
	case errors.Is(err, validate.ErrInvalidPagination):
		return http.StatusBadRequest, "Invalid pagination parameters"
	case errors.Is(err, catalog.ErrMissingSearch):
		return http.StatusBadRequest, "At least one search criterion is required"
	case errors.Is(err, catalog.ErrMissingCategories):
		return http.StatusBadRequest, "At least one category is required"
	case errors.Is(err, catalog.ErrUnsupportedImage):
		return http.StatusBadRequest, "Unsupported image type"
	case errors.Is(err, booksrepo.ErrNotFound):
		return http.StatusNotFound, "Book not found"
	case errors.Is(err, googlebooks.ErrNotFound):
		return http.StatusNotFound, "Book metadata not found"
	case errors.Is(err, booksrepo.ErrDuplicate):
		return http.StatusConflict, "Book already exists in the library"
	case errors.Is(err, googlebooks.ErrUnavailable):
		return http.StatusBadGateway, "Metadata service unavailable"
	case errors.Is(err, catalog.ErrCoversDisabled):
		return http.StatusServiceUnavailable, "Cover storage is not configured"
	}
	return http.StatusInternalServerError, "Internal server error"
}

func validationMessage(verr *validate.ValidationError) string {
	parts := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	if len(parts) == 0 {
		return "Validation failed"
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}
