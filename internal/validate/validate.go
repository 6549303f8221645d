package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"libraryapi/internal/models"
)

var (
	ErrInvalidISBN       = errors.New("invalid ISBN")
	ErrInvalidStatus     = errors.New("invalid reading status")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// Paging defaults and bounds. Out-of-range values are rejected, not clamped.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

var isbnStripRe = regexp.MustCompile(`[^0-9X]`)

// NormalizeISBN strips separators and noise characters and checks the shape
// of the result: 13 digits, or 9 digits plus a digit/X check character.
func NormalizeISBN(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidISBN)
	}
	isbn := isbnStripRe.ReplaceAllString(strings.ToUpper(raw), "")

	switch len(isbn) {
	case 13:
		for _, r := range isbn {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("%w: %q", ErrInvalidISBN, raw)
			}
		}
		return isbn, nil
	case 10:
		for i, r := range isbn[:9] {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("%w: %q (position %d)", ErrInvalidISBN, raw, i)
			}
		}
		last := isbn[9]
		if (last < '0' || last > '9') && last != 'X' {
			return "", fmt.Errorf("%w: %q", ErrInvalidISBN, raw)
		}
		return isbn, nil
	default:
		return "", fmt.Errorf("%w: %q has %d significant characters, want 10 or 13", ErrInvalidISBN, raw, len(isbn))
	}
}

// ReadingStatus checks the enum. The empty string is not a valid status;
// defaulting to "unread" is the caller's decision.
func ReadingStatus(raw string) (string, error) {
	switch raw {
	case models.StatusRead, models.StatusUnread, models.StatusInProgress:
		return raw, nil
	}
	return "", fmt.Errorf("%w: %q (want read, unread or in_progress)", ErrInvalidStatus, raw)
}

// Pagination parses limit/skip query values. Absent values get defaults;
// present values must parse and be in range.
func Pagination(limitRaw, skipRaw string) (limit, skip int, err error) {
	limit, skip = DefaultLimit, 0

	if s := strings.TrimSpace(limitRaw); s != "" {
		v, perr := strconv.Atoi(s)
		if perr != nil || v < 1 || v > MaxLimit {
			return 0, 0, fmt.Errorf("%w: limit must be an integer in [1,%d]", ErrInvalidPagination, MaxLimit)
		}
		limit = v
	}
	if s := strings.TrimSpace(skipRaw); s != "" {
		v, perr := strconv.Atoi(s)
		if perr != nil || v < 0 {
			return 0, 0, fmt.Errorf("%w: skip must be a non-negative integer", ErrInvalidPagination)
		}
		skip = v
	}
	return limit, skip, nil
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors for a manual-entry payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ManualBookInput is the manual-entry payload shape. Decoding it with
// DisallowUnknownFields already rejects wrong-typed authors/categories.
type ManualBookInput struct {
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	PageCount     *int     `json:"page_count"`
	CoverImage    string   `json:"cover_image"`
	PublishedDate string   `json:"published_date"`
	Publisher     string   `json:"publisher"`
	Language      string   `json:"language"`
	ReadingStatus string   `json:"reading_status"`
}

// ManualBook validates a manual-entry payload and builds the book draft.
// ID and CreatedAt stay zero; the repository assigns them on insert.
func ManualBook(in ManualBookInput) (models.Book, error) {
	var fields []FieldError

	isbn, err := NormalizeISBN(in.ISBN)
	if err != nil {
		if strings.TrimSpace(in.ISBN) == "" {
			fields = append(fields, FieldError{Field: "isbn", Message: "required"})
		} else {
			fields = append(fields, FieldError{Field: "isbn", Message: "must be a valid 10 or 13 character ISBN"})
		}
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "required"})
	}

	if in.PageCount != nil && *in.PageCount < 0 {
		fields = append(fields, FieldError{Field: "page_count", Message: "must be a non-negative integer"})
	}

	status := models.StatusUnread
	if in.ReadingStatus != "" {
		s, serr := ReadingStatus(in.ReadingStatus)
		if serr != nil {
			fields = append(fields, FieldError{Field: "reading_status", Message: "must be one of read, unread, in_progress"})
		} else {
			status = s
		}
	}

	if len(fields) > 0 {
		return models.Book{}, &ValidationError{Fields: fields}
	}

	language := strings.TrimSpace(in.Language)
	if language == "" {
		language = "en"
	}

	return models.Book{
		ISBN:          isbn,
		Title:         title,
		Authors:       cleanList(in.Authors),
		Description:   strings.TrimSpace(in.Description),
		Categories:    cleanList(in.Categories),
		PageCount:     in.PageCount,
		CoverImage:    strings.TrimSpace(in.CoverImage),
		PublishedDate: strings.TrimSpace(in.PublishedDate),
		Publisher:     strings.TrimSpace(in.Publisher),
		Language:      language,
		ReadingStatus: status,
	}, nil
}

// ParseCategoriesCSV: "a, b ,c" -> ["a","b","c"] (trimmed, empties dropped).
func ParseCategoriesCSV(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
