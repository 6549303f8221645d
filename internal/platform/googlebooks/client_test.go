package googlebooks_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"libraryapi/internal/platform/googlebooks"
)

func newTestClient(handler http.HandlerFunc) (*googlebooks.Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := googlebooks.NewClient(srv.URL, 2*time.Second, 100)
	return c, srv
}

func TestFetchByISBN_Hit(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "isbn:9780439708180" {
			t.Errorf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{"volumeInfo": {
				"title": "Harry Potter and the Sorcerer's Stone",
				"authors": ["J.K. Rowling"],
				"description": "A boy discovers he is a wizard.",
				"categories": ["Fiction", "Fantasy"],
				"pageCount": 309,
				"publishedDate": "1998-10-01",
				"publisher": "Scholastic",
				"language": "en",
				"imageLinks": {"thumbnail": "http://img/thumb.jpg", "large": "http://img/large.jpg"}
			}}]
		}`))
	})
	defer srv.Close()

	m, err := c.FetchByISBN(context.Background(), "9780439708180")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Harry Potter and the Sorcerer's Stone" {
		t.Errorf("title = %q", m.Title)
	}
	if len(m.Authors) != 1 || m.Authors[0] != "J.K. Rowling" {
		t.Errorf("authors = %v", m.Authors)
	}
	if m.PageCount == nil || *m.PageCount != 309 {
		t.Errorf("page count = %v", m.PageCount)
	}
	if m.CoverImage != "http://img/large.jpg" {
		t.Errorf("cover should prefer large over thumbnail, got %q", m.CoverImage)
	}
}

func TestFetchByISBN_NotFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	})
	defer srv.Close()

	_, err := c.FetchByISBN(context.Background(), "9780000000002")
	if !errors.Is(err, googlebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFetchByISBN_Upstream5xx(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := c.FetchByISBN(context.Background(), "9780439708180")
	if !errors.Is(err, googlebooks.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestFetchByISBN_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := googlebooks.NewClient(srv.URL, time.Second, 100)
	_, err := c.FetchByISBN(context.Background(), "9780439708180")
	if !errors.Is(err, googlebooks.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestFetchByISBN_Defaults(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{"volumeInfo": {"title": "Bare Volume"}}]
		}`))
	})
	defer srv.Close()

	m, err := c.FetchByISBN(context.Background(), "9780439708180")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Authors == nil || len(m.Authors) != 0 {
		t.Errorf("authors should default to empty slice, got %v", m.Authors)
	}
	if m.Categories == nil || len(m.Categories) != 0 {
		t.Errorf("categories should default to empty slice, got %v", m.Categories)
	}
	if m.PageCount != nil {
		t.Errorf("page count should be absent, got %v", *m.PageCount)
	}
	if m.Language != "en" {
		t.Errorf("language should default to en, got %q", m.Language)
	}
	if m.CoverImage != "" {
		t.Errorf("cover should be empty, got %q", m.CoverImage)
	}
}
