package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"libraryapi/internal/api/httpx"
)

func Healthz(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}

// Readyz reports ready only when the database answers a ping.
func Readyz(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, struct {
				Status string `json:"status"`
			}{Status: "unavailable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, struct {
			Status string `json:"status"`
		}{Status: "ready"})
	}
}
