package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"libraryapi/internal/models"
	"libraryapi/internal/platform/googlebooks"
	"libraryapi/internal/repo/booksrepo"
	"libraryapi/internal/validate"
)

// MetadataFetcher is what the service needs from the lookup client.
type MetadataFetcher interface {
	FetchByISBN(ctx context.Context, isbn string) (googlebooks.Metadata, error)
}

// CoverStore is what the service needs from object storage.
type CoverStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Service implements the catalog use cases. It is stateless; every request
// flows validation first, then at most one store or upstream interaction.
type Service struct {
	db     *sql.DB
	meta   MetadataFetcher
	covers CoverStore // nil when cover storage is not configured
}

func NewService(db *sql.DB, meta MetadataFetcher, covers CoverStore) *Service {
	return &Service{db: db, meta: meta, covers: covers}
}

// ListResult pairs one page of books with its pagination envelope.
type ListResult struct {
	Books      []models.Book
	Pagination Pagination
}

// SearchCriteria echoes which criteria produced a search result.
type SearchCriteria struct {
	Query    string `json:"query,omitempty"`
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
}

func (c SearchCriteria) isZero() bool {
	return c.Query == "" && c.Title == "" && c.Author == "" && c.Category == ""
}

// AddByISBN looks the identifier up with the metadata client and stores the
// resulting book with reading status "unread".
func (s *Service) AddByISBN(ctx context.Context, rawISBN string) (models.Book, error) {
	isbn, err := validate.NormalizeISBN(rawISBN)
	if err != nil {
		return models.Book{}, err
	}

	meta, err := s.meta.FetchByISBN(ctx, isbn)
	if err != nil {
		return models.Book{}, err
	}

	book := models.Book{
		ISBN:          isbn,
		Title:         meta.Title,
		Authors:       meta.Authors,
		Description:   meta.Description,
		Categories:    meta.Categories,
		PageCount:     meta.PageCount,
		CoverImage:    meta.CoverImage,
		PublishedDate: meta.PublishedDate,
		Publisher:     meta.Publisher,
		Language:      meta.Language,
		ReadingStatus: models.StatusUnread,
	}
	stored, err := booksrepo.Insert(ctx, s.db, book)
	if err != nil {
		return models.Book{}, err
	}
	slog.Info("book added from metadata lookup", "isbn", isbn, "title", stored.Title)
	return stored, nil
}

// AddManual stores a fully caller-supplied book after validation.
func (s *Service) AddManual(ctx context.Context, in validate.ManualBookInput) (models.Book, error) {
	draft, err := validate.ManualBook(in)
	if err != nil {
		return models.Book{}, err
	}
	stored, err := booksrepo.Insert(ctx, s.db, draft)
	if err != nil {
		return models.Book{}, err
	}
	slog.Info("book added manually", "isbn", stored.ISBN, "title", stored.Title)
	return stored, nil
}

func (s *Service) Get(ctx context.Context, rawISBN string) (models.Book, error) {
	isbn, err := validate.NormalizeISBN(rawISBN)
	if err != nil {
		return models.Book{}, err
	}
	return booksrepo.FetchByISBN(ctx, s.db, isbn)
}

// Update applies a partial update. Touched fields are validated before the
// store is called; isbn and storage key are not updatable.
func (s *Service) Update(ctx context.Context, rawISBN string, patch models.BookPatch) (models.Book, error) {
	isbn, err := validate.NormalizeISBN(rawISBN)
	if err != nil {
		return models.Book{}, err
	}

	var fields []validate.FieldError
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		fields = append(fields, validate.FieldError{Field: "title", Message: "must not be empty"})
	}
	if patch.PageCount != nil && *patch.PageCount < 0 {
		fields = append(fields, validate.FieldError{Field: "page_count", Message: "must be a non-negative integer"})
	}
	if patch.ReadingStatus != nil {
		if _, serr := validate.ReadingStatus(*patch.ReadingStatus); serr != nil {
			fields = append(fields, validate.FieldError{Field: "reading_status", Message: "must be one of read, unread, in_progress"})
		}
	}
	if len(fields) > 0 {
		return models.Book{}, &validate.ValidationError{Fields: fields}
	}

	return booksrepo.Update(ctx, s.db, isbn, patch)
}

func (s *Service) UpdateStatus(ctx context.Context, rawISBN, rawStatus string) (models.Book, error) {
	isbn, err := validate.NormalizeISBN(rawISBN)
	if err != nil {
		return models.Book{}, err
	}
	status, err := validate.ReadingStatus(rawStatus)
	if err != nil {
		return models.Book{}, err
	}
	return booksrepo.SetReadingStatus(ctx, s.db, isbn, status)
}

func (s *Service) Delete(ctx context.Context, rawISBN string) error {
	isbn, err := validate.NormalizeISBN(rawISBN)
	if err != nil {
		return err
	}
	if err := booksrepo.Delete(ctx, s.db, isbn); err != nil {
		return err
	}
	slog.Info("book deleted", "isbn", isbn)
	return nil
}

func (s *Service) ListAll(ctx context.Context, limitRaw, skipRaw string) (ListResult, error) {
	limit, skip, err := validate.Pagination(limitRaw, skipRaw)
	if err != nil {
		return ListResult{}, err
	}
	books, total, err := booksrepo.List(ctx, s.db, limit, skip)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Books: books, Pagination: NewPagination(limit, skip, len(books), total)}, nil
}

// Search requires at least one criterion and reports which were used.
func (s *Service) Search(ctx context.Context, criteria SearchCriteria, limitRaw, skipRaw string) (ListResult, SearchCriteria, error) {
	limit, skip, err := validate.Pagination(limitRaw, skipRaw)
	if err != nil {
		return ListResult{}, SearchCriteria{}, err
	}
	if criteria.isZero() {
		return ListResult{}, SearchCriteria{}, ErrMissingSearch
	}

	books, total, err := booksrepo.Search(ctx, s.db, booksrepo.SearchFilter{
		Query:    criteria.Query,
		Title:    criteria.Title,
		Author:   criteria.Author,
		Category: criteria.Category,
	}, limit, skip)
	if err != nil {
		return ListResult{}, SearchCriteria{}, err
	}
	return ListResult{Books: books, Pagination: NewPagination(limit, skip, len(books), total)}, criteria, nil
}

// FilterByCategories splits the raw comma-separated list; a book matches if
// it has at least one of the categories (OR semantics).
func (s *Service) FilterByCategories(ctx context.Context, rawCategories, limitRaw, skipRaw string) (ListResult, error) {
	categories := validate.ParseCategoriesCSV(rawCategories)
	if len(categories) == 0 {
		return ListResult{}, ErrMissingCategories
	}
	limit, skip, err := validate.Pagination(limitRaw, skipRaw)
	if err != nil {
		return ListResult{}, err
	}
	books, total, err := booksrepo.FilterByCategories(ctx, s.db, categories, limit, skip)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Books: books, Pagination: NewPagination(limit, skip, len(books), total)}, nil
}

func (s *Service) ByAuthor(ctx context.Context, name, limitRaw, skipRaw string) (ListResult, error) {
	limit, skip, err := validate.Pagination(limitRaw, skipRaw)
	if err != nil {
		return ListResult{}, err
	}
	books, total, err := booksrepo.Search(ctx, s.db, booksrepo.SearchFilter{Author: name}, limit, skip)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Books: books, Pagination: NewPagination(limit, skip, len(books), total)}, nil
}

func (s *Service) ByCategory(ctx context.Context, name, limitRaw, skipRaw string) (ListResult, error) {
	limit, skip, err := validate.Pagination(limitRaw, skipRaw)
	if err != nil {
		return ListResult{}, err
	}
	books, total, err := booksrepo.FilterByCategories(ctx, s.db, []string{name}, limit, skip)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Books: books, Pagination: NewPagination(limit, skip, len(books), total)}, nil
}

func (s *Service) ByStatus(ctx context.Context, rawStatus, limitRaw, skipRaw string) (ListResult, error) {
	status, err := validate.ReadingStatus(rawStatus)
	if err != nil {
		return ListResult{}, err
	}
	limit, skip, err := validate.Pagination(limitRaw, skipRaw)
	if err != nil {
		return ListResult{}, err
	}
	books, total, err := booksrepo.ListByStatus(ctx, s.db, status, limit, skip)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Books: books, Pagination: NewPagination(limit, skip, len(books), total)}, nil
}

// AttachCover uploads the image and records its public URL on the book.
// The uploaded object is removed again when the database write fails.
func (s *Service) AttachCover(ctx context.Context, rawISBN string, body io.Reader, contentType string, size int64) (models.Book, error) {
	if s.covers == nil {
		return models.Book{}, ErrCoversDisabled
	}
	isbn, err := validate.NormalizeISBN(rawISBN)
	if err != nil {
		return models.Book{}, err
	}

	ext := coverExt(contentType)
	if ext == "" {
		return models.Book{}, ErrUnsupportedImage
	}

	key := path.Join("books", "covers", fmt.Sprintf("%s-%s%s", isbn, uuid.NewString(), ext))
	if err := s.covers.Upload(ctx, key, contentType, body, size); err != nil {
		return models.Book{}, fmt.Errorf("upload cover: %w", err)
	}

	coverURL := s.covers.PublicURL(key)
	if err := booksrepo.SetCoverImage(ctx, s.db, isbn, coverURL); err != nil {
		if derr := s.covers.Delete(ctx, key); derr != nil {
			slog.Warn("orphaned cover object left behind", "key", key, "err", derr)
		}
		return models.Book{}, err
	}

	slog.Info("cover attached", "isbn", isbn, "key", key)
	return booksrepo.FetchByISBN(ctx, s.db, isbn)
}

func coverExt(contentType string) string {
	switch contentType {
	case "image/webp":
		return ".webp"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	return ""
}
