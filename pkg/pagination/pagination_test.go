package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := seq(13)

	page := Paginate(items, 10, 1)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 13, page.TotalItems)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, page.Items)

	page = Paginate(items, 10, 2)
	assert.Equal(t, []int{11, 12, 13}, page.Items)
	assert.Equal(t, 2, page.PageNumber)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestPaginate_ClampsBeyondLastPage(t *testing.T) {
	items := seq(13)

	last := Paginate(items, 10, 2)
	clamped := Paginate(items, 10, 3)

	assert.Equal(t, last.Items, clamped.Items)
	assert.Equal(t, 2, clamped.PageNumber)

	clamped = Paginate(items, 10, 999)
	assert.Equal(t, last.Items, clamped.Items)
}

func TestPaginate_ClampsBelowFirstPage(t *testing.T) {
	items := seq(13)

	first := Paginate(items, 10, 1)

	assert.Equal(t, first, Paginate(items, 10, 0))
	assert.Equal(t, first, Paginate(items, 10, -5))
}

func TestPaginate_EmptySequence(t *testing.T) {
	page := Paginate([]int{}, 10, 7)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page := Paginate(seq(20), 10, 2)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
}
