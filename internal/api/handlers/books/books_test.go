package books_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"libraryapi/internal/api/router"
	"libraryapi/internal/catalog"
	"libraryapi/internal/platform/googlebooks"
)

type fakeMeta struct {
	meta googlebooks.Metadata
	err  error
}

func (f *fakeMeta) FetchByISBN(ctx context.Context, isbn string) (googlebooks.Metadata, error) {
	if f.err != nil {
		return googlebooks.Metadata{}, f.err
	}
	return f.meta, nil
}

var bookCols = []string{
	"id", "isbn", "title", "authors", "description", "categories",
	"page_count", "cover_image", "published_date", "publisher", "language",
	"reading_status", "created_at",
}

func sampleRow(rows *sqlmock.Rows, isbn, title, status string) *sqlmock.Rows {
	return rows.AddRow(
		"5f2b9c1e-0000-0000-0000-000000000001", isbn, title,
		[]byte(`["J.K. Rowling"]`), "", []byte(`["Fantasy"]`),
		nil, "", "1997", "Scholastic", "en", status, time.Now(),
	)
}

func newServer(t *testing.T, meta catalog.MetadataFetcher) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	svc := catalog.NewService(db, meta, nil)
	return router.Router(db, svc), mock
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestAddBook_Created(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{meta: googlebooks.Metadata{
		Title:    "Harry Potter and the Sorcerer's Stone",
		Authors:  []string{"J.K. Rowling"},
		Language: "en",
	}})

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO books`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("5f2b9c1e-0000-0000-0000-000000000001", time.Now()))

	rec := doJSON(t, h, http.MethodPost, "/books", `{"isbn":"978-0439708180"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	if out["message"] != "Book added successfully" {
		t.Errorf("unexpected message: %v", out["message"])
	}
	book := out["book"].(map[string]any)
	if book["isbn"] != "9780439708180" {
		t.Errorf("expected normalized isbn, got %v", book["isbn"])
	}
	if book["reading_status"] != "unread" {
		t.Errorf("new books start unread, got %v", book["reading_status"])
	}
}

func TestAddBook_InvalidISBN(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodPost, "/books", `{"isbn":"not-an-isbn"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddBook_MetadataMiss(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{err: googlebooks.ErrNotFound})

	rec := doJSON(t, h, http.MethodPost, "/books", `{"isbn":"9780439708180"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddBook_UpstreamDown(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{err: googlebooks.ErrUnavailable})

	rec := doJSON(t, h, http.MethodPost, "/books", `{"isbn":"9780439708180"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestAddBook_Duplicate(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{meta: googlebooks.Metadata{Title: "Dune"}})

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO books`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"})

	rec := doJSON(t, h, http.MethodPost, "/books", `{"isbn":"9780441013593"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAddManual_Created(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO books`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("5f2b9c1e-0000-0000-0000-000000000002", time.Now()))

	rec := doJSON(t, h, http.MethodPost, "/books/manual",
		`{"isbn":"9780441013593","title":"Dune","authors":["Frank Herbert"]}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAddManual_MissingTitle(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodPost, "/books/manual", `{"isbn":"9780441013593"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	out := decodeBody(t, rec)
	if msg, _ := out["message"].(string); !strings.Contains(msg, "title") {
		t.Errorf("expected title in validation message, got %q", msg)
	}
}

func TestGetBook_OK(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`FROM books b WHERE b.isbn = $1`)).
		WithArgs("9780439708180").
		WillReturnRows(sampleRow(sqlmock.NewRows(bookCols),
			"9780439708180", "Harry Potter", "read"))

	rec := doJSON(t, h, http.MethodGet, "/books/9780439708180", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	book := out["book"].(map[string]any)
	if book["title"] != "Harry Potter" {
		t.Errorf("unexpected title: %v", book["title"])
	}
}

func TestGetBook_NotFound(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`FROM books b WHERE b.isbn = $1`)).
		WithArgs("9780439708180").
		WillReturnRows(sqlmock.NewRows(bookCols))

	rec := doJSON(t, h, http.MethodGet, "/books/9780439708180", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListBooks_Pagination(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books b`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	rows := sqlmock.NewRows(bookCols)
	sampleRow(rows, "9780439708180", "Harry Potter", "read")
	sampleRow(rows, "9780441013593", "Dune", "unread")
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY b.created_at, b.id LIMIT $1 OFFSET $2`)).
		WithArgs(2, 10).
		WillReturnRows(rows)

	rec := doJSON(t, h, http.MethodGet, "/books?limit=2&skip=10", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	p := out["pagination"].(map[string]any)
	if p["total"] != float64(12) || p["count"] != float64(2) {
		t.Errorf("unexpected totals: %v", p)
	}
	if p["has_next"] != false || p["has_prev"] != true {
		t.Errorf("unexpected nav flags: %v", p)
	}
	if p["page"] != float64(6) || p["total_pages"] != float64(6) {
		t.Errorf("unexpected page math: %v", p)
	}
}

func TestListBooks_BadPagination(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	for _, q := range []string{"limit=0", "limit=101", "skip=-1", "limit=abc"} {
		rec := doJSON(t, h, http.MethodGet, "/books?"+q, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestSearch_RequiresCriterion(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodGet, "/books/search", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearch_EchoesCriteria(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books b`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY b.created_at, b.id`)).
		WillReturnRows(sampleRow(sqlmock.NewRows(bookCols),
			"9780441013593", "Dune", "unread"))

	rec := doJSON(t, h, http.MethodGet, "/books/search?author=Herbert", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	crit := out["search_criteria"].(map[string]any)
	if crit["author"] != "Herbert" {
		t.Errorf("expected author echoed, got %v", crit)
	}
}

func TestSearch_GeneralQueryParam(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books b`)).
		WithArgs("%Dune%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`b.description ILIKE`)).
		WithArgs("%Dune%", 50, 0).
		WillReturnRows(sampleRow(sqlmock.NewRows(bookCols),
			"9780441013593", "Dune", "unread"))

	rec := doJSON(t, h, http.MethodGet, "/books/search?query=Dune", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	crit := out["search_criteria"].(map[string]any)
	if crit["query"] != "Dune" {
		t.Errorf("expected query echoed, got %v", crit)
	}
	books := out["books"].([]any)
	if len(books) != 1 {
		t.Errorf("expected one match, got %d", len(books))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFilterCategories_Required(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodGet, "/books/filter/categories", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestByStatus_Unknown(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodGet, "/books/status/finished", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatus_OK(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE books b SET reading_status = $1 WHERE b.isbn = $2`)).
		WithArgs("read", "9780439708180").
		WillReturnRows(sampleRow(sqlmock.NewRows(bookCols),
			"9780439708180", "Harry Potter", "read"))

	rec := doJSON(t, h, http.MethodPut, "/books/9780439708180/status",
		`{"reading_status":"read"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	if out["message"] != "Reading status updated successfully" {
		t.Errorf("unexpected message: %v", out["message"])
	}
}

func TestUpdateStatus_Invalid(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodPut, "/books/9780439708180/status",
		`{"reading_status":"finished"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateBook_UnknownFieldRejected(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodPut, "/books/9780439708180", `{"isbn":"changed"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("identifier must be immutable, got %d", rec.Code)
	}
}

func TestDeleteBook(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE isbn = $1`)).
		WithArgs("9780439708180").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doJSON(t, h, http.MethodDelete, "/books/9780439708180", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE isbn = $1`)).
		WithArgs("9780439708180").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec = doJSON(t, h, http.MethodDelete, "/books/9780439708180", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete should 404, got %d", rec.Code)
	}
}

func TestStatistics(t *testing.T) {
	h, mock := newServer(t, &fakeMeta{})

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY reading_status`)).
		WillReturnRows(sqlmock.NewRows([]string{"reading_status", "count"}).
			AddRow("read", 2).
			AddRow("unread", 1).
			AddRow("in_progress", 1))

	rec := doJSON(t, h, http.MethodGet, "/books/statistics", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	stats := out["statistics"].(map[string]any)
	if stats["total_books"] != float64(4) {
		t.Errorf("unexpected total: %v", stats["total_books"])
	}
	if stats["reading_percentage"] != float64(50) {
		t.Errorf("unexpected reading percentage: %v", stats["reading_percentage"])
	}
}

func TestAttachCover_Disabled(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	body := &strings.Builder{}
	body.WriteString("--boundary\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"cover\"; filename=\"c.png\"\r\n")
	body.WriteString("Content-Type: image/png\r\n\r\n")
	body.WriteString("pngbytes\r\n")
	body.WriteString("--boundary--\r\n")

	req := httptest.NewRequest(http.MethodPost, "/books/9780439708180/cover", strings.NewReader(body.String()))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without cover storage, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h, _ := newServer(t, &fakeMeta{})

	rec := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
