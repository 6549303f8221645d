package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// fromPG catches database errors the repository layer does not translate
// itself. Returns (status, message, true) when the SQLSTATE is recognized.
func fromPG(err error) (int, string, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return 0, "", false
	}

	switch pg.Code {
	case "23505": // unique_violation
		return http.StatusConflict, "Book already exists in the library", true
	case "23502": // not_null_violation
		return http.StatusBadRequest, "Required field is missing", true
	case "23514": // check_violation
		return http.StatusBadRequest, "Invalid field value", true
	case "22001": // string_data_right_truncation
		return http.StatusBadRequest, "Value is too long", true
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return http.StatusConflict, "Transaction conflict, please retry", true
	}
	return http.StatusInternalServerError, "Database error", true
}
