package booksrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"libraryapi/internal/models"
)

// Insert stores a new book and returns it with the store-assigned key.
// Duplicate ISBNs surface as ErrDuplicate via the unique index; the insert
// is the atomicity boundary, there is no prior existence check.
func Insert(ctx context.Context, db *sql.DB, book models.Book) (models.Book, error) {
	err := db.QueryRowContext(ctx, `
		INSERT INTO books (isbn, title, authors, description, categories,
			page_count, cover_image, published_date, publisher, language, reading_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		book.ISBN, book.Title, marshalList(book.Authors), book.Description,
		marshalList(book.Categories), book.PageCount, book.CoverImage,
		book.PublishedDate, book.Publisher, book.Language, book.ReadingStatus,
	).Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Book{}, fmt.Errorf("%w: %s", ErrDuplicate, book.ISBN)
		}
		return models.Book{}, err
	}
	if book.Authors == nil {
		book.Authors = []string{}
	}
	if book.Categories == nil {
		book.Categories = []string{}
	}
	return book, nil
}

// Update applies the non-nil fields of patch. ISBN and id never appear in
// the SET clause regardless of what the caller decoded.
func Update(ctx context.Context, db *sql.DB, isbn string, patch models.BookPatch) (models.Book, error) {
	if patch.IsZero() {
		return FetchByISBN(ctx, db, isbn)
	}

	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Authors != nil {
		add("authors", marshalList(*patch.Authors))
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Categories != nil {
		add("categories", marshalList(*patch.Categories))
	}
	if patch.PageCount != nil {
		add("page_count", *patch.PageCount)
	}
	if patch.CoverImage != nil {
		add("cover_image", *patch.CoverImage)
	}
	if patch.PublishedDate != nil {
		add("published_date", *patch.PublishedDate)
	}
	if patch.Publisher != nil {
		add("publisher", *patch.Publisher)
	}
	if patch.Language != nil {
		add("language", *patch.Language)
	}
	if patch.ReadingStatus != nil {
		add("reading_status", *patch.ReadingStatus)
	}

	args = append(args, isbn)
	q := `UPDATE books b SET ` + strings.Join(set, ", ") +
		` WHERE b.isbn = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + bookColumns

	book, err := scanBook(db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, fmt.Errorf("%w: %s", ErrNotFound, isbn)
		}
		return models.Book{}, err
	}
	return book, nil
}

// SetReadingStatus is the dedicated status mutation.
func SetReadingStatus(ctx context.Context, db *sql.DB, isbn, status string) (models.Book, error) {
	return Update(ctx, db, isbn, models.BookPatch{ReadingStatus: &status})
}

// SetCoverImage records the stored cover object URL.
func SetCoverImage(ctx context.Context, db *sql.DB, isbn, coverURL string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE books SET cover_image = $1 WHERE isbn = $2`, coverURL, isbn)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, isbn)
	}
	return nil
}

func Delete(ctx context.Context, db *sql.DB, isbn string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, isbn)
	}
	return nil
}
