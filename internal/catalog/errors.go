package catalog

import "errors"

var (
	// ErrMissingSearch is returned when a search request carries none of
	// query, title, author or category.
	ErrMissingSearch = errors.New("at least one search criterion is required")
	// ErrMissingCategories is returned when the category filter resolves to
	// an empty list after splitting and trimming.
	ErrMissingCategories = errors.New("at least one category is required")
	// ErrCoversDisabled is returned when cover storage is not configured.
	ErrCoversDisabled = errors.New("cover storage is not configured")
	// ErrUnsupportedImage is returned for cover uploads that are not
	// webp, jpeg or png.
	ErrUnsupportedImage = errors.New("cover must be webp, jpeg or png")
)
