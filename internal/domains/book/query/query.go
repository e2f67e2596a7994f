// Package query implements sorting, searching and pagination over
// catalog listings as pure slice operations.
package query

import (
	"errors"
	"sort"
	"strings"

	"bookvault-backend/internal/domains/book/model"
)

// DefaultPageSize applies when the caller does not request a size.
const DefaultPageSize = 8

const (
	SortByName   = "name"
	SortByAuthor = "author"
	SortByPrice  = "price"
)

var (
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidPageNumber = errors.New("invalid page number")
)

// SortBooks returns a new slice ordered by the given field. Only the
// allow-listed fields are accepted; anything else is rejected.
func SortBooks(books []model.Book, field string) ([]model.Book, error) {
	sorted := make([]model.Book, len(books))
	copy(sorted, books)

	switch field {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case SortByAuthor:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Author < sorted[j].Author
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	default:
		return nil, ErrInvalidSortField
	}

	return sorted, nil
}

// SearchBooks returns the books whose name, author or description
// contains the query, compared case-insensitively.
func SearchBooks(books []model.Book, q string) []model.Book {
	needle := strings.ToLower(q)

	matched := make([]model.Book, 0)
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Name), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) ||
			strings.Contains(strings.ToLower(b.Description), needle) {
			matched = append(matched, b)
		}
	}

	return matched
}

// Paginate slices out the requested zero-based page. A non-positive
// page size falls back to DefaultPageSize. A page past the end is not
// an error; it is simply empty.
func Paginate(books []model.Book, pageNumber, pageSize int) ([]model.Book, error) {
	if pageNumber < 0 {
		return nil, ErrInvalidPageNumber
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	offset := pageNumber * pageSize
	if offset >= len(books) {
		return []model.Book{}, nil
	}

	end := offset + pageSize
	if end > len(books) {
		end = len(books)
	}

	page := make([]model.Book, end-offset)
	copy(page, books[offset:end])
	return page, nil
}
