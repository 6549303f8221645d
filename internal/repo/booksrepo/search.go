package booksrepo

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"libraryapi/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps user input for ILIKE. % and _ in the input are literal
// characters to match, not wildcards.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Search runs a case-insensitive substring match for whichever criteria are
// set. The general query spans title, authors and description.
func Search(ctx context.Context, db *sql.DB, f SearchFilter, limit, skip int) ([]models.Book, int, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Query != "" {
		p := arg(likePattern(f.Query))
		where = append(where, `(
			b.title ILIKE `+p+`
			OR b.description ILIKE `+p+`
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(b.authors) AS author(name)
				WHERE author.name ILIKE `+p+`
			)
		)`)
	}
	if f.Title != "" {
		where = append(where, "b.title ILIKE "+arg(likePattern(f.Title)))
	}
	if f.Author != "" {
		p := arg(likePattern(f.Author))
		where = append(where, `EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(b.authors) AS author(name)
			WHERE author.name ILIKE `+p+`
		)`)
	}
	if f.Category != "" {
		p := arg(likePattern(f.Category))
		where = append(where, `EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(b.categories) AS cat(name)
			WHERE cat.name ILIKE `+p+`
		)`)
	}

	return queryPage(ctx, db, where, args, limit, skip)
}
