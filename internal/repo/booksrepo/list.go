package booksrepo

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"libraryapi/internal/models"
)

// queryPage runs the shared count+page pair for every listing operation.
// Order is creation order, tie-broken by id, so paging is stable.
func queryPage(ctx context.Context, db *sql.DB, where []string, args []any, limit, skip int) ([]models.Book, int, error) {
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM books b`+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := append(append([]any{}, args...), limit, skip)
	q := `SELECT ` + bookColumns + ` FROM books b` + cond +
		` ORDER BY b.created_at, b.id` +
		` LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)

	rows, err := db.QueryContext(ctx, q, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

// List returns one page of the whole collection plus the collection total.
func List(ctx context.Context, db *sql.DB, limit, skip int) ([]models.Book, int, error) {
	return queryPage(ctx, db, nil, nil, limit, skip)
}

func ListByStatus(ctx context.Context, db *sql.DB, status string, limit, skip int) ([]models.Book, int, error) {
	return queryPage(ctx, db, []string{"b.reading_status = $1"}, []any{status}, limit, skip)
}

// FilterByCategories matches books having at least one of the requested
// categories, compared case-insensitively. Multiple categories are OR.
func FilterByCategories(ctx context.Context, db *sql.DB, categories []string, limit, skip int) ([]models.Book, int, error) {
	lowered := make([]string, len(categories))
	for i, c := range categories {
		lowered[i] = strings.ToLower(strings.TrimSpace(c))
	}
	where := []string{`EXISTS (
		SELECT 1 FROM jsonb_array_elements_text(b.categories) AS cat(name)
		WHERE lower(cat.name) = ANY($1::text[])
	)`}
	return queryPage(ctx, db, where, []any{lowered}, limit, skip)
}
