package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_FirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, &PaginationParams{Page: 1, PerPage: 2})

	assert.Equal(t, []int{1, 2}, result.Items)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)
}

func TestPaginate_LastPageIsPartial(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, &PaginationParams{Page: 3, PerPage: 2})

	assert.Equal(t, []int{5}, result.Items)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	items := []int{1, 2, 3}

	result := Paginate(items, &PaginationParams{Page: 10, PerPage: 15})

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(3), result.Pagination.Total)
}

func TestPaginate_InvalidParamsFallBackToDefaults(t *testing.T) {
	items := make([]int, 20)

	result := Paginate(items, &PaginationParams{Page: -1, PerPage: 0})

	require.NotNil(t, result.Pagination)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 15, result.Pagination.PerPage)
	assert.Len(t, result.Items, 15)
}
