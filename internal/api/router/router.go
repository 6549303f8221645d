package router

import (
	"database/sql"
	"net/http"

	"libraryapi/internal/api/handlers"
	"libraryapi/internal/api/handlers/books"
	"libraryapi/internal/catalog"
)

func Router(db *sql.DB, svc *catalog.Service) http.Handler {
	mux := http.NewServeMux()
	h := books.NewHandler(svc)

	// Health
	mux.HandleFunc("GET /healthz", handlers.Healthz)
	mux.Handle("GET /readyz", handlers.Readyz(db))

	// Literal segments before {isbn} wildcards
	mux.HandleFunc("GET /books/search", h.Search)
	mux.HandleFunc("GET /books/filter/categories", h.Filter)
	mux.HandleFunc("GET /books/statistics", h.Statistics)
	mux.HandleFunc("GET /books/authors/{name}", h.ByAuthor)
	mux.HandleFunc("GET /books/categories/{name}", h.ByCategory)
	mux.HandleFunc("GET /books/status/{status}", h.ByStatus)
	mux.HandleFunc("POST /books/manual", h.CreateManual)

	// Collection and item routes
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{isbn}", h.Get)
	mux.HandleFunc("PUT /books/{isbn}", h.Update)
	mux.HandleFunc("DELETE /books/{isbn}", h.Delete)
	mux.HandleFunc("PUT /books/{isbn}/status", h.UpdateStatus)
	mux.HandleFunc("POST /books/{isbn}/cover", h.Cover)

	return mux
}
