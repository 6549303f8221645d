package booksrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"libraryapi/internal/models"
)

func FetchByISBN(ctx context.Context, db *sql.DB, isbn string) (models.Book, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books b WHERE b.isbn = $1`, isbn)
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, fmt.Errorf("%w: %s", ErrNotFound, isbn)
		}
		return models.Book{}, err
	}
	return book, nil
}
