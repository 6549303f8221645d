package booksrepo

import (
	"context"
	"database/sql"

	"libraryapi/internal/models"
)

// CountByStatus returns a count for each reading status. Statuses with no
// books are present with a zero count.
func CountByStatus(ctx context.Context, db *sql.DB) (map[string]int, error) {
	counts := map[string]int{
		models.StatusRead:       0,
		models.StatusUnread:     0,
		models.StatusInProgress: 0,
	}

	rows, err := db.QueryContext(ctx,
		`SELECT reading_status, COUNT(*) FROM books GROUP BY reading_status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
