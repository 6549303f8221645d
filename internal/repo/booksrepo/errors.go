package booksrepo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("book not found")
	ErrDuplicate = errors.New("book already exists")
)

// isUniqueViolation reports whether err is the unique-index violation raised
// by books_isbn_key. The constraint is the only duplicate check we do; there
// is no read-then-write window.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}
