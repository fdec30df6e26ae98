package domain

import "unicode/utf8"

// maxCategoryTitleLength is the upper bound on category title length.
const maxCategoryTitleLength = 255

// CategoryTitle is a validated category title: non-empty, at most 255
// characters.
type CategoryTitle struct {
	value string
}

// NewCategoryTitle validates the raw title and wraps it.
func NewCategoryTitle(raw string) (CategoryTitle, error) {
	if raw == "" {
		return CategoryTitle{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(raw) > maxCategoryTitleLength {
		return CategoryTitle{}, ErrTitleTooLong
	}
	return CategoryTitle{value: raw}, nil
}

// String returns the underlying title.
func (t CategoryTitle) String() string {
	return t.value
}
