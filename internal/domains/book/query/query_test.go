package query

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookvault-backend/internal/domains/book/model"
)

func makeBooks(n int) []model.Book {
	books := make([]model.Book, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, model.Book{
			ID:          int64(i),
			Name:        fmt.Sprintf("Book %02d", i),
			Author:      fmt.Sprintf("Author %02d", n-i+1),
			Description: fmt.Sprintf("Description %02d", i),
			Price:       decimal.NewFromInt(int64((i*37)%100 + 1)),
			Quantity:    20,
		})
	}
	return books
}

func TestSortBooksByPriceNonDecreasing(t *testing.T) {
	books := makeBooks(15)

	sorted, err := SortBooks(books, SortByPrice)
	require.NoError(t, err)
	require.Len(t, sorted, 15)

	for i := 1; i < len(sorted); i++ {
		assert.True(t, sorted[i-1].Price.LessThanOrEqual(sorted[i].Price),
			"price at %d exceeds price at %d", i-1, i)
	}
}

func TestSortBooksByNameAndAuthor(t *testing.T) {
	books := []model.Book{
		{ID: 1, Name: "zebra", Author: "Ann"},
		{ID: 2, Name: "Apple", Author: "zoe"},
		{ID: 3, Name: "mango", Author: "Bob"},
	}

	byName, err := SortBooks(books, SortByName)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, ids(byName))

	byAuthor, err := SortBooks(books, SortByAuthor)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, ids(byAuthor))
}

func TestSortBooksDoesNotMutateInput(t *testing.T) {
	books := []model.Book{
		{ID: 1, Name: "b"},
		{ID: 2, Name: "a"},
	}

	_, err := SortBooks(books, SortByName)
	require.NoError(t, err)

	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(2), books[1].ID)
}

func TestSortBooksRejectsUnknownField(t *testing.T) {
	_, err := SortBooks(makeBooks(3), "quantity")
	assert.ErrorIs(t, err, ErrInvalidSortField)

	_, err = SortBooks(makeBooks(3), "id")
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestSearchBooksCaseInsensitive(t *testing.T) {
	books := []model.Book{
		{ID: 1, Name: "The Go Programming Language", Author: "Donovan", Description: "systems"},
		{ID: 2, Name: "Clean Code", Author: "Martin", Description: "craftsmanship"},
		{ID: 3, Name: "Refactoring", Author: "Fowler", Description: "improving GO code"},
	}

	assert.Equal(t, []int64{1, 3}, ids(SearchBooks(books, "go")))
	assert.Equal(t, []int64{1, 3}, ids(SearchBooks(books, "GO")))
	assert.Equal(t, []int64{2}, ids(SearchBooks(books, "martin")))
	assert.Empty(t, SearchBooks(books, "haskell"))
}

func TestSearchBooksMatchesDescription(t *testing.T) {
	books := []model.Book{
		{ID: 1, Name: "A", Author: "B", Description: "a thrilling mystery"},
	}

	assert.Equal(t, []int64{1}, ids(SearchBooks(books, "mystery")))
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	books := makeBooks(15)

	page, err := Paginate(books, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, DefaultPageSize)
	assert.Equal(t, int64(1), page[0].ID)
}

func TestPaginatePartialLastPage(t *testing.T) {
	books := makeBooks(15)

	page, err := Paginate(books, 1, 8)
	require.NoError(t, err)
	assert.Len(t, page, 7)
	assert.Equal(t, int64(9), page[0].ID)
	assert.Equal(t, int64(15), page[6].ID)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	books := makeBooks(15)

	page, err := Paginate(books, 10, 8)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestPaginateRejectsNegativePageNumber(t *testing.T) {
	_, err := Paginate(makeBooks(15), -1, 8)
	assert.ErrorIs(t, err, ErrInvalidPageNumber)
}

func TestPaginateEmptyCatalog(t *testing.T) {
	page, err := Paginate(nil, 0, 8)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func ids(books []model.Book) []int64 {
	out := make([]int64, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}
