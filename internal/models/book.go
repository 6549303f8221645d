package models

import "time"

// Book is the single canonical schema: the repository scans into it, the
// service returns it, and the HTTP layer serializes it as-is.
type Book struct {
	ID            string    `json:"id"`
	ISBN          string    `json:"isbn"`
	Title         string    `json:"title"`
	Authors       []string  `json:"authors"`
	Description   string    `json:"description,omitempty"`
	Categories    []string  `json:"categories"`
	PageCount     *int      `json:"page_count,omitempty"`
	CoverImage    string    `json:"cover_image,omitempty"`
	PublishedDate string    `json:"published_date,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	Language      string    `json:"language,omitempty"`
	ReadingStatus string    `json:"reading_status"`
	CreatedAt     time.Time `json:"-"`
}

// Reading status values. Nothing else is ever persisted.
const (
	StatusRead       = "read"
	StatusUnread     = "unread"
	StatusInProgress = "in_progress"
)

// BookPatch is a partial update: nil means "leave untouched". ISBN and ID
// have no fields here on purpose; they are immutable after creation.
type BookPatch struct {
	Title         *string   `json:"title,omitempty"`
	Authors       *[]string `json:"authors,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Categories    *[]string `json:"categories,omitempty"`
	PageCount     *int      `json:"page_count,omitempty"`
	CoverImage    *string   `json:"cover_image,omitempty"`
	PublishedDate *string   `json:"published_date,omitempty"`
	Publisher     *string   `json:"publisher,omitempty"`
	Language      *string   `json:"language,omitempty"`
	ReadingStatus *string   `json:"reading_status,omitempty"`
}

// IsZero reports whether the patch touches nothing.
func (p BookPatch) IsZero() bool {
	return p.Title == nil && p.Authors == nil && p.Description == nil &&
		p.Categories == nil && p.PageCount == nil && p.CoverImage == nil &&
		p.PublishedDate == nil && p.Publisher == nil && p.Language == nil &&
		p.ReadingStatus == nil
}
