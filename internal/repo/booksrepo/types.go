package booksrepo

import (
	"database/sql"
	"encoding/json"

	"libraryapi/internal/models"
)

const bookColumns = `b.id, b.isbn, b.title, b.authors, b.description, b.categories,
	b.page_count, b.cover_image, b.published_date, b.publisher, b.language,
	b.reading_status, b.created_at`

// SearchFilter holds the single active search criterion. The service sets
// exactly one of these; the repository ANDs whatever is present.
type SearchFilter struct {
	Query    string // title OR authors OR description, substring
	Title    string
	Author   string
	Category string
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var (
		b              models.Book
		authorsJSON    []byte
		categoriesJSON []byte
		pageCount      sql.NullInt64
	)
	if err := row.Scan(
		&b.ID, &b.ISBN, &b.Title, &authorsJSON, &b.Description, &categoriesJSON,
		&pageCount, &b.CoverImage, &b.PublishedDate, &b.Publisher, &b.Language,
		&b.ReadingStatus, &b.CreatedAt,
	); err != nil {
		return models.Book{}, err
	}

	b.Authors = []string{}
	b.Categories = []string{}
	_ = json.Unmarshal(authorsJSON, &b.Authors)
	_ = json.Unmarshal(categoriesJSON, &b.Categories)
	if pageCount.Valid {
		v := int(pageCount.Int64)
		b.PageCount = &v
	}
	return b, nil
}

func marshalList(in []string) []byte {
	if in == nil {
		in = []string{}
	}
	out, _ := json.Marshal(in)
	return out
}
